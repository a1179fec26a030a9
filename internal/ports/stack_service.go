package ports

import (
	"context"

	"github.com/thomas-vilte/stackmate/internal/models"
)

// StackService orchestrates the stacked-commit workflow on top of the
// git service and the VCS client.
type StackService interface {
	// CreateStackedPR transplants one commit onto a fresh branch cut
	// from the remote main line, pushes it and opens a pull request.
	// An empty ref means the tip of the main line.
	CreateStackedPR(ctx context.Context, ref string) (models.StackedPR, error)
	// UpdateStackedPR transplants the current main line tip onto the
	// stacked branch derived from ref's subject, pushes the update and
	// autosquashes the tip back into the target commit on the main line.
	UpdateStackedPR(ctx context.Context, ref string) (models.StackUpdate, error)
	// ListStackedPRs returns the open stacked pull requests.
	ListStackedPRs(ctx context.Context) ([]models.StackedPR, error)
}
