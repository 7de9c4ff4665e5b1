package config

import (
	"context"
	"fmt"
	"os"

	"github.com/agusmolina/conventional-emojis/internal/cli/command/hook"
	"github.com/agusmolina/conventional-emojis/internal/i18n"
	"github.com/agusmolina/conventional-emojis/internal/ui"
	"github.com/urfave/cli/v3"
)

const sampleConfig = `# Reglas de emojis para conventional-emojis.
# Todas las secciones son opcionales: lo que no esté acá usa los defaults.

# Tipos extra o overrides de la tabla por defecto
# (feat, fix, docs, style, refactor, perf, test, build, ci, config, chore, wip)
[types]
# revert = "⏪"

# Patrones de scope (regex, match de string completo, primero que matchea gana)
[scopes]
# "api.*" = "🌐"
# deps = "📦"

# Combos: por tipo de commit, un patrón de scope que reemplaza al emoji de tipo
# [combos.feat]
# api = "🚀"

[config]
breaking_emoji = "💥"
commit_message_template = "{conventional_prefix} {breaking_emoji}{type_emoji}{scope_emoji} {description}\n{body}"
`

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: t.GetMessage("config_init_force_flag_usage", 0, nil),
			},
		},
		Action: initConfigAction(t),
	}
}

func initConfigAction(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		path := hook.DefaultConfigFile

		if !command.Bool("force") {
			if _, err := os.Stat(path); err == nil {
				return cli.Exit(t.GetMessage("config_init_exists", 0, map[string]interface{}{"Path": path}), 1)
			}
		}

		if err := os.WriteFile(path, []byte(sampleConfig), 0644); err != nil {
			return fmt.Errorf("error al escribir el archivo de configuración de ejemplo: %w", err)
		}

		ui.PrintSuccess(t.GetMessage("config_init_written", 0, map[string]interface{}{"Path": path}))
		return nil
	}
}
