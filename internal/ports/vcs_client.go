package ports

import (
	"context"

	"github.com/thomas-vilte/stackmate/internal/models"
)

// VCSClient talks to the review platform's API.
type VCSClient interface {
	// CreatePR opens a pull request for a pushed stacked branch.
	CreatePR(ctx context.Context, spec models.PRSpec) (models.StackedPR, error)
	// ListStackedPRs returns the open pull requests whose head branch
	// carries the given prefix.
	ListStackedPRs(ctx context.Context, prefix string) ([]models.StackedPR, error)
}
