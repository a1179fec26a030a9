package config

import (
	"context"

	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/ui"
	"github.com/urfave/cli/v3"
)

func (c *ConfigCommandFactory) newSetBranchCommand(t *i18n.Translations, cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "set-branch",
		Usage: t.GetMessage("config_set_branch_usage", 0, nil),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "main",
				Usage: "main integration branch",
			},
			&cli.StringFlag{
				Name:  "remote",
				Usage: "remote the stacked branches are pushed to",
			},
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "prefix for derived branch names",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			if main := command.String("main"); main != "" {
				cfg.MainBranch = main
			}
			if remote := command.String("remote"); remote != "" {
				cfg.Remote = remote
			}
			if command.IsSet("prefix") {
				cfg.BranchPrefix = command.String("prefix")
			}

			if err := config.SaveConfig(cfg); err != nil {
				return err
			}

			ui.PrintSuccess(command.Writer, t.GetMessage("config.branch_updated", 0, map[string]interface{}{
				"Branch": cfg.MainBranch,
			}))
			ui.PrintSuccess(command.Writer, t.GetMessage("config.remote_updated", 0, map[string]interface{}{
				"Remote": cfg.Remote,
			}))
			ui.PrintSuccess(command.Writer, t.GetMessage("config.prefix_updated", 0, map[string]interface{}{
				"Prefix": cfg.BranchPrefix,
			}))
			return nil
		},
	}
}
