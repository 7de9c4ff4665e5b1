package main

import (
	"context"
	"log"
	"os"

	configcmd "github.com/agusmolina/conventional-emojis/internal/cli/command/config"
	"github.com/agusmolina/conventional-emojis/internal/cli/command/hook"
	"github.com/agusmolina/conventional-emojis/internal/i18n"
	"github.com/agusmolina/conventional-emojis/internal/version"
	"github.com/urfave/cli/v3"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Error iniciando la cli: %v", err)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func initializeApp() (*cli.Command, error) {
	lang := os.Getenv("CONVENTIONAL_EMOJIS_LANG")
	if lang == "" {
		lang = "en"
	}

	translations, err := i18n.NewTranslations(lang, "")
	if err != nil {
		return nil, err
	}

	hookFactory := hook.NewHookCommandFactory()

	return &cli.Command{
		Name:                  "conventional-emojis",
		Usage:                 translations.GetMessage("app_usage", 0, nil),
		Version:               version.Version,
		Description:           translations.GetMessage("app_description", 0, nil),
		ArgsUsage:             "<commit_message_file>",
		Flags:                 hookFactory.Flags(translations),
		Action:                hookFactory.Action(translations),
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			configcmd.NewConfigCommandFactory().CreateCommand(translations),
		},
	}, nil
}
