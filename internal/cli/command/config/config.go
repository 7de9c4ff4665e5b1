package config

import (
	"github.com/agusmolina/conventional-emojis/internal/i18n"
	"github.com/urfave/cli/v3"
)

// ConfigCommandFactory agrupa los subcomandos de configuración
type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newInitCommand(t),
		},
	}
}
