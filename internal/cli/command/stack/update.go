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

type UpdateCommandFactory struct {
	stackFactory services.StackServiceFactoryInterface
}

func NewUpdateCommandFactory(stackFactory services.StackServiceFactoryInterface) *UpdateCommandFactory {
	return &UpdateCommandFactory{stackFactory: stackFactory}
}

func (c *UpdateCommandFactory) CreateCommand(t *i18n.Translations, _ *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:      "update",
		Aliases:   []string{"u"},
		Usage:     t.GetMessage("stack.update_usage", 0, nil),
		ArgsUsage: "<commit-ref>",
		Action: func(ctx context.Context, command *cli.Command) error {
			ref := command.Args().First()
			if ref == "" {
				if err := cli.ShowSubcommandHelp(command); err != nil {
					return err
				}
				return fmt.Errorf("%s", t.GetMessage("stack.missing_commit_arg", 0, nil))
			}

			service, err := c.stackFactory.CreateStackService(ctx)
			if err != nil {
				return fmt.Errorf(t.GetMessage("error.service_creation", 0, nil)+": %w", err)
			}

			spinner := ui.NewSpinner(t.GetMessage("stack.updating", 0, map[string]interface{}{
				"Branch": ref,
			}))
			spinner.Start()

			update, err := service.UpdateStackedPR(ctx, ref)
			if err != nil {
				spinner.Stop()
				return err
			}
			spinner.Stop()

			ui.PrintSuccess(command.Writer, t.GetMessage("stack.updated", 0, map[string]interface{}{
				"Branch": update.Branch,
				"Commit": update.Target.ShortSHA(),
			}))
			return nil
		},
	}
}
