package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/agusmolina/conventional-emojis/internal/config"
	"github.com/agusmolina/conventional-emojis/internal/emoji"
	"github.com/agusmolina/conventional-emojis/internal/logger"
	"github.com/agusmolina/conventional-emojis/internal/parser"
	"github.com/agusmolina/conventional-emojis/internal/renderer"
)

type (
	// CommitProcessor ejecuta el pipeline completo: parse → resolver emojis → renderizar
	CommitProcessor struct {
		cfg *config.ResolvedConfig
	}

	// ProcessOptions son los flags por invocación del pipeline
	ProcessOptions struct {
		EnforceScopePatterns bool
		DisableBreakingEmoji bool
	}
)

// NewCommitProcessor crea el procesador con una configuración ya resuelta
func NewCommitProcessor(cfg *config.ResolvedConfig) *CommitProcessor {
	return &CommitProcessor{cfg: cfg}
}

// ProcessMessage transforma un mensaje de commit en memoria. No toca el filesystem.
func (p *CommitProcessor) ProcessMessage(ctx context.Context, commitMessage string, opts ProcessOptions) (string, error) {
	details, err := parser.Extract(commitMessage)
	if err != nil {
		return "", err
	}

	logger.Debug(ctx, "commit parseado",
		"type", details.CommitType,
		"scope", details.Scope,
		"breaking", details.Breaking,
	)

	emojis, err := emoji.Resolve(details, p.cfg, emoji.Options{
		EnforceScopePatterns: opts.EnforceScopePatterns,
		DisableBreakingEmoji: opts.DisableBreakingEmoji,
	})
	if err != nil {
		return "", err
	}

	logger.Debug(ctx, "emojis resueltos",
		"type_emoji", emojis.TypeEmoji,
		"scope_emoji", emojis.ScopeEmoji,
		"breaking_emoji", emojis.BreakingEmoji,
	)

	return renderer.Render(details, emojis, p.cfg.Template)
}

// ProcessFile lee el archivo del mensaje, lo procesa y lo sobrescribe.
// Lectura y escritura son dos operaciones separadas: si el pipeline falla,
// el archivo queda intacto.
func (p *CommitProcessor) ProcessFile(ctx context.Context, path string, opts ProcessOptions) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("error al leer el archivo del mensaje de commit: %w", err)
	}

	commitMessage := strings.TrimSpace(string(data))

	processed, err := p.ProcessMessage(ctx, commitMessage, opts)
	if err != nil {
		return commitMessage, err
	}

	if err := os.WriteFile(path, []byte(processed), 0644); err != nil {
		return commitMessage, fmt.Errorf("error al escribir el mensaje de commit actualizado: %w", err)
	}

	logger.Info(ctx, "mensaje de commit actualizado", "file", path)

	return processed, nil
}
