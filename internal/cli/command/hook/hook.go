package hook

import (
	"context"

	"github.com/agusmolina/conventional-emojis/internal/config"
	"github.com/agusmolina/conventional-emojis/internal/i18n"
	"github.com/agusmolina/conventional-emojis/internal/logger"
	"github.com/agusmolina/conventional-emojis/internal/services"
	"github.com/agusmolina/conventional-emojis/internal/ui"
	"github.com/urfave/cli/v3"
)

// DefaultConfigFile es la ruta por defecto del archivo de reglas
const DefaultConfigFile = "conventional_emojis_config.toml"

// HookCommandFactory arma la acción raíz del hook: procesa el archivo del
// mensaje de commit recibido como argumento posicional.
type HookCommandFactory struct{}

func NewHookCommandFactory() *HookCommandFactory {
	return &HookCommandFactory{}
}

func (f *HookCommandFactory) Flags(t *i18n.Translations) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config-file",
			Aliases: []string{"c"},
			Value:   DefaultConfigFile,
			Usage:   t.GetMessage("config_file_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "disable-types-as-scopes",
			Usage: t.GetMessage("disable_types_as_scopes_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:  "template",
			Usage: t.GetMessage("template_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "disable-breaking-emoji",
			Usage: t.GetMessage("disable_breaking_emoji_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "enforce-scope-patterns",
			Usage: t.GetMessage("enforce_scope_patterns_flag_usage", 0, nil),
		},
		&cli.StringFlag{
			Name:    "lang",
			Aliases: []string{"l"},
			Value:   "en",
			Usage:   t.GetMessage("lang_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: t.GetMessage("verbose_flag_usage", 0, nil),
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: t.GetMessage("debug_flag_usage", 0, nil),
		},
	}
}

func (f *HookCommandFactory) Action(t *i18n.Translations) cli.ActionFunc {
	return func(ctx context.Context, command *cli.Command) error {
		logger.Initialize(command.Bool("debug"), command.Bool("verbose"))

		if lang := command.String("lang"); lang != "" {
			if err := t.SetLanguage(lang); err != nil {
				logger.Warn(ctx, "idioma no soportado, se mantiene el actual", "lang", lang)
			}
		}

		commitFile := command.Args().First()
		if commitFile == "" {
			return cli.Exit(t.GetMessage("missing_commit_file_arg", 0, nil), 1)
		}

		content, err := config.LoadFile(command.String("config-file"))
		if err != nil {
			return cli.Exit(t.GetMessage("unexpected_error", 0, map[string]interface{}{"Error": err.Error()}), 1)
		}
		if content == nil {
			ui.PrintInfo(t.GetMessage("no_config_file", 0, nil))
		}

		// La configuración se resuelve una sola vez, antes de tocar el mensaje
		resolved, err := config.Resolve(content, config.Options{
			AllowTypesAsScopes: !command.Bool("disable-types-as-scopes"),
			TemplateOverride:   command.String("template"),
		})
		if err != nil {
			return cli.Exit(t.GetMessage("unexpected_error", 0, map[string]interface{}{"Error": err.Error()}), 1)
		}

		processor := services.NewCommitProcessor(resolved)
		message, err := processor.ProcessFile(ctx, commitFile, services.ProcessOptions{
			EnforceScopePatterns: command.Bool("enforce-scope-patterns"),
			DisableBreakingEmoji: command.Bool("disable-breaking-emoji"),
		})
		if err != nil {
			ui.PrintError(t.GetMessage("commit_failed", 0, map[string]interface{}{
				"Message": message,
				"Error":   err.Error(),
			}))
			return cli.Exit("", 1)
		}

		ui.PrintSuccess(t.GetMessage("commit_updated", 0, nil))
		return nil
	}
}
