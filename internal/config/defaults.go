package config

// Tabla de tipos por defecto. Es inmutable: cada resolución trabaja sobre una copia,
// nunca sobre esta tabla (evita fugas de estado entre invocaciones cuando se usa como librería).
var defaultCommitTypes = map[string]string{
	"feat":     "✨",
	"fix":      "🐛",
	"docs":     "📝",
	"style":    "💄",
	"refactor": "♻️",
	"perf":     "⚡️",
	"test":     "✅",
	"build":    "🏗️",
	"ci":       "👷",
	"config":   "🔧",
	"chore":    "🧹",
	"wip":      "🚧",
}

// defaultTypeOrder fija el orden de inserción de la tabla por defecto,
// relevante para la extensión scopes.update(types).
var defaultTypeOrder = []string{
	"feat", "fix", "docs", "style", "refactor", "perf",
	"test", "build", "ci", "config", "chore", "wip",
}

const (
	// DefaultBreakingEmoji es el emoji para breaking changes (marcador !)
	DefaultBreakingEmoji = "💥"

	// DefaultCommitMessageTemplate es el template de mensaje por defecto
	DefaultCommitMessageTemplate = "{conventional_prefix} {breaking_emoji}{type_emoji}{scope_emoji} {description}\n{body}"
)

// DefaultCommitTypes devuelve una copia de la tabla de tipos por defecto
func DefaultCommitTypes() map[string]string {
	types := make(map[string]string, len(defaultCommitTypes))
	for k, v := range defaultCommitTypes {
		types[k] = v
	}
	return types
}
