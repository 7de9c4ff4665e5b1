package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	domainErrors "github.com/agusmolina/conventional-emojis/internal/domain/errors"
)

type (
	// ScopeRule es un par (patrón, emoji). Las tablas de scopes y combos se modelan
	// como slices ordenados porque la semántica es first-match-wins en orden de inserción.
	ScopeRule struct {
		Pattern string
		Emoji   string
		re      *regexp.Regexp
	}

	// ResolvedConfig es la configuración final: defaults + overrides del usuario.
	// Se construye una vez por invocación y después es de solo lectura.
	ResolvedConfig struct {
		Types         map[string]string
		Scopes        []ScopeRule            // nil si no hay tabla [scopes]
		Combos        map[string][]ScopeRule // nil si no hay tabla [combos]
		BreakingEmoji string
		Template      string
	}

	// Options controla la resolución de la configuración
	Options struct {
		AllowTypesAsScopes bool
		TemplateOverride   string // vacío = sin override
	}
)

// Esquema del archivo TOML. Claves fuera de este esquema se rechazan.
type (
	rawConfig struct {
		Types  map[string]string            `toml:"types"`
		Scopes map[string]string            `toml:"scopes"`
		Combos map[string]map[string]string `toml:"combos"`
		Config rawSettings                  `toml:"config"`
	}

	rawSettings struct {
		BreakingEmoji         string `toml:"breaking_emoji"`
		CommitMessageTemplate string `toml:"commit_message_template"`
	}
)

// NewScopeRule compila un patrón de scope. El match es siempre de string completo.
func NewScopeRule(pattern, emoji string) (ScopeRule, error) {
	re, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return ScopeRule{}, err
	}
	return ScopeRule{Pattern: pattern, Emoji: emoji, re: re}, nil
}

// Matches informa si el scope coincide con el patrón (match de string completo)
func (r *ScopeRule) Matches(scope string) bool {
	return r.re.MatchString(scope)
}

// Resolve mezcla los defaults con el contenido TOML del usuario (vacío = solo defaults).
// El orden de los patrones de [scopes] y [combos.*] se preserva tal como aparece en el archivo.
func Resolve(content []byte, opts Options) (*ResolvedConfig, error) {
	resolved := &ResolvedConfig{
		Types:         DefaultCommitTypes(),
		BreakingEmoji: DefaultBreakingEmoji,
		Template:      DefaultCommitMessageTemplate,
	}

	typeOrder := make([]string, len(defaultTypeOrder))
	copy(typeOrder, defaultTypeOrder)

	if len(content) > 0 {
		raw := rawConfig{
			Config: rawSettings{
				BreakingEmoji:         DefaultBreakingEmoji,
				CommitMessageTemplate: DefaultCommitMessageTemplate,
			},
		}

		md, err := toml.Decode(string(content), &raw)
		if err != nil {
			return nil, domainErrors.NewConfigParseError(err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			return nil, domainErrors.NewInvalidConfigError(
				fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", ")), nil)
		}

		// Los tipos del usuario pisan a los defaults; los tipos nuevos se agregan
		// al final en el orden del archivo
		for _, key := range md.Keys() {
			if len(key) == 2 && key[0] == "types" {
				name := key[1]
				if _, exists := resolved.Types[name]; !exists {
					typeOrder = append(typeOrder, name)
				}
				resolved.Types[name] = raw.Types[name]
			}
		}

		if md.IsDefined("scopes") {
			resolved.Scopes = []ScopeRule{}
			for _, key := range md.Keys() {
				if len(key) == 2 && key[0] == "scopes" {
					rule, err := NewScopeRule(key[1], raw.Scopes[key[1]])
					if err != nil {
						return nil, domainErrors.NewInvalidConfigError(
							fmt.Sprintf("invalid scope pattern %q", key[1]), err)
					}
					resolved.Scopes = append(resolved.Scopes, rule)
				}
			}
		}

		if md.IsDefined("combos") {
			resolved.Combos = make(map[string][]ScopeRule)
			for _, key := range md.Keys() {
				if len(key) == 3 && key[0] == "combos" {
					commitType, pattern := key[1], key[2]
					rule, err := NewScopeRule(pattern, raw.Combos[commitType][pattern])
					if err != nil {
						return nil, domainErrors.NewInvalidConfigError(
							fmt.Sprintf("invalid combo pattern %q for type %q", pattern, commitType), err)
					}
					resolved.Combos[commitType] = append(resolved.Combos[commitType], rule)
				}
			}
		}

		resolved.BreakingEmoji = raw.Config.BreakingEmoji
		resolved.Template = raw.Config.CommitMessageTemplate
	}

	if opts.TemplateOverride != "" {
		resolved.Template = opts.TemplateOverride
	}

	// scopes.update(types): solo si existe una tabla [scopes]. Una entrada de tipo
	// pisa a una entrada de scope explícita con la misma clave, conservando su posición.
	if resolved.Scopes != nil && opts.AllowTypesAsScopes {
		if err := resolved.extendScopesWithTypes(typeOrder); err != nil {
			return nil, err
		}
	}

	return resolved, nil
}

func (c *ResolvedConfig) extendScopesWithTypes(typeOrder []string) error {
	for _, name := range typeOrder {
		emoji := c.Types[name]

		overwritten := false
		for i := range c.Scopes {
			if c.Scopes[i].Pattern == name {
				c.Scopes[i].Emoji = emoji
				overwritten = true
				break
			}
		}
		if overwritten {
			continue
		}

		rule, err := NewScopeRule(name, emoji)
		if err != nil {
			return domainErrors.NewInvalidConfigError(
				fmt.Sprintf("commit type %q is not usable as a scope pattern", name), err)
		}
		c.Scopes = append(c.Scopes, rule)
	}
	return nil
}

// LoadFile lee el archivo de configuración. Si no existe devuelve contenido vacío
// sin error: el llamador decide si emite una nota diagnóstica.
func LoadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al leer el archivo de configuración: %w", err)
	}
	return data, nil
}
