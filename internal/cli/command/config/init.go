package config

import (
	"context"

	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newInitCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: t.GetMessage("config_init_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "main-branch",
				Value: cfg.MainBranch,
				Usage: "main integration branch",
			},
			&cli.StringFlag{
				Name:  "remote",
				Value: cfg.Remote,
				Usage: "remote the stacked branches are pushed to",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Value: cfg.BranchPrefix,
				Usage: "prefix for derived branch names",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			cfg.MainBranch = command.String("main-branch")
			cfg.Remote = command.String("remote")
			cfg.BranchPrefix = command.String("prefix")

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(command.Writer, t.GetMessage("config.init_done", 0, map[string]interface{}{
				"Path": cfg.PathFile,
			}))
			return nil
		},
	}
}
