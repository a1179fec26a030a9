package config

import (
	"context"

	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/errors"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetTokenCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "set-token",
		Usage:     t.GetMessage("config_set_token_usage", 0, nil),
		ArgsUsage: "<token>",
		Action: func(ctx context.Context, command *cli.Command) error {
			token := command.Args().First()
			if token == "" {
				return errors.ErrTokenMissing
			}

			cfg.GithubToken = token
			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(command.Writer, t.GetMessage("config.token_updated", 0, nil))
			return nil
		},
	}
}
