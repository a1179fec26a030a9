package stack

import (
	"context"
	"fmt"

	cfg "github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/models"
	"github.com/thomas-vilte/stackmate/internal/services"
	"github.com/thomas-vilte/stackmate/internal/ui"
	"github.com/urfave/cli/v3"
)

type ListCommandFactory struct {
	stackFactory services.StackServiceFactoryInterface
}

func NewListCommandFactory(stackFactory services.StackServiceFactoryInterface) *ListCommandFactory {
	return &ListCommandFactory{stackFactory: stackFactory}
}

func (c *ListCommandFactory) CreateCommand(t *i18n.Translations, config *cfg.Config) *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   t.GetMessage("stack.list_usage", 0, nil),
		Action: func(ctx context.Context, command *cli.Command) error {
			service, err := c.stackFactory.CreateStackService(ctx)
			if err != nil {
				return fmt.Errorf(t.GetMessage("error.service_creation", 0, nil)+": %w", err)
			}

			var stacked []models.StackedPR
			if err := ui.WithSpinner(t.GetMessage("stack.listing", 0, nil), func() error {
				var listErr error
				stacked, listErr = service.ListStackedPRs(ctx)
				return listErr
			}); err != nil {
				return err
			}

			if len(stacked) == 0 {
				ui.PrintInfo(t.GetMessage("stack.no_open_prs", 0, nil))
				return nil
			}

			ui.PrintSectionBanner(t.GetMessage("stack.open_prs_header", len(stacked), map[string]interface{}{
				"Count": len(stacked),
			}))

			bullet := "-"
			if config.UseEmoji {
				bullet = ui.BranchEmoji
			}

			for _, pr := range stacked {
				marker := ""
				if pr.Draft {
					marker = ui.Dim.Sprintf(" [%s]", t.GetMessage("stack.draft_marker", 0, nil))
				}
				_, _ = fmt.Fprintf(command.Writer, "  %s #%d %s%s\n",
					bullet, pr.Number, pr.Title, marker)
				ui.PrintKeyValue(pr.Branch, pr.URL)
			}
			return nil
		},
	}
}
