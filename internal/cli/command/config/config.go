package config

import (
	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/urfave/cli/v3"
)

type ConfigCommandFactory struct{}

func NewConfigCommandFactory() *ConfigCommandFactory {
	return &ConfigCommandFactory{}
}

func (c *ConfigCommandFactory) CreateCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   t.GetMessage("config_command_usage", 0, nil),
		Commands: []*cli.Command{
			c.newInitCommand(t, cfg),
			c.newShowCommand(t, cfg),
			c.newSetLangCommand(t, cfg),
			c.newSetTokenCommand(t, cfg),
			c.newSetBranchCommand(t, cfg),
		},
	}
}
