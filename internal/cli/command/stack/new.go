package stack

import (
	"context"
	"fmt"

	cfg "github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/services"
	"github.com/thomas-vilte/stackmate/internal/ui"
	"github.com/urfave/cli/v3"
)

type NewCommandFactory struct {
	stackFactory services.StackServiceFactoryInterface
}

func NewNewCommandFactory(stackFactory services.StackServiceFactoryInterface) *NewCommandFactory {
	return &NewCommandFactory{stackFactory: stackFactory}
}

func (c *NewCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "new",
		Aliases:   []string{"n"},
		Usage:     t.GetMessage("stack.new_usage", 0, nil),
		ArgsUsage: "[commit-ref]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "draft",
				Usage: "open the pull request as a draft",
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			service, err := c.stackFactory.CreateStackService(ctx)
			if err != nil {
				return fmt.Errorf(t.GetMessage("error.service_creation", 0, nil)+": %w", err)
			}

			ref := command.Args().First()
			if command.Bool("draft") {
				config.DraftPRs = true
			}

			spinner := ui.NewSpinner(t.GetMessage("stack.creating", 0, map[string]interface{}{
				"Branch": config.BranchPrefix + "…",
				"Commit": refOrMain(ref, config.MainBranch),
			}))
			spinner.Start()

			created, err := service.CreateStackedPR(ctx, ref)
			if err != nil {
				spinner.Stop()
				return err
			}
			spinner.Stop()

			ui.PrintSuccess(command.Writer, t.GetMessage("stack.branch_pushed", 0, map[string]interface{}{
				"Branch": created.Branch,
			}))
			ui.PrintSuccess(command.Writer, t.GetMessage("stack.pr_created", 0, map[string]interface{}{
				"Number": created.Number,
				"URL":    created.URL,
			}))
			return nil
		},
	}
}

func refOrMain(ref, mainBranch string) string {
	if ref == "" {
		return mainBranch
	}
	return ref
}
