package emoji

import (
	"sort"
	"strings"

	"github.com/agusmolina/conventional-emojis/internal/config"
	domainErrors "github.com/agusmolina/conventional-emojis/internal/domain/errors"
	"github.com/agusmolina/conventional-emojis/internal/domain/models"
)

// Options controla la resolución de emojis
type Options struct {
	EnforceScopePatterns bool
	DisableBreakingEmoji bool
}

// Resolve determina el set de emojis para un commit ya parseado.
//
// Precedencia: primero los combos (tipo+scope), que al matchear reemplazan el emoji
// de tipo y anulan el de scope; después la tabla de tipos y la de scopes.
func Resolve(details models.CommitDetails, cfg *config.ResolvedConfig, opts Options) (models.EmojiSet, error) {
	scope := strings.TrimSpace(details.Scope)

	if cfg.Combos != nil && details.Scope != "" {
		if comboRules, ok := cfg.Combos[details.CommitType]; ok {
			for i := range comboRules {
				if comboRules[i].Matches(scope) {
					return models.EmojiSet{
						TypeEmoji:     comboRules[i].Emoji,
						ScopeEmoji:    "",
						BreakingEmoji: breakingEmoji(details, cfg, opts),
					}, nil
				}
			}
		}
	}

	typeEmoji, ok := cfg.Types[details.CommitType]
	if !ok {
		return models.EmojiSet{}, domainErrors.NewNoConventionalCommitTypeFoundError(
			details.CommitType, sortedTypes(cfg.Types))
	}

	scopeEmoji := ""
	if details.Scope != "" && cfg.Scopes != nil {
		matched := false
		for i := range cfg.Scopes {
			if cfg.Scopes[i].Matches(scope) {
				scopeEmoji = cfg.Scopes[i].Emoji
				matched = true
				break
			}
		}
		if !matched && opts.EnforceScopePatterns {
			return models.EmojiSet{}, domainErrors.NewUndefinedScopeError(details.Scope)
		}
	}

	return models.EmojiSet{
		TypeEmoji:     typeEmoji,
		ScopeEmoji:    scopeEmoji,
		BreakingEmoji: breakingEmoji(details, cfg, opts),
	}, nil
}

func breakingEmoji(details models.CommitDetails, cfg *config.ResolvedConfig, opts Options) string {
	if details.Breaking && !opts.DisableBreakingEmoji {
		return cfg.BreakingEmoji
	}
	return ""
}

func sortedTypes(types map[string]string) []string {
	keys := make([]string, 0, len(types))
	for k := range types {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
