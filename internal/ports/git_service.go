package ports

import (
	"context"

	"github.com/thomas-vilte/stackmate/internal/models"
)

// GitService wraps the git operations the stacked workflow needs.
// Implementations shell out to the git binary.
type GitService interface {
	// IsRepository reports whether the working directory is inside a
	// git checkout.
	IsRepository(ctx context.Context) bool
	// IsClean reports whether the working tree has no uncommitted
	// changes.
	IsClean(ctx context.Context) (bool, error)
	// ResolveCommit resolves a reference to its hash, subject and body.
	ResolveCommit(ctx context.Context, ref string) (models.Commit, error)
	GetCurrentBranch(ctx context.Context) (string, error)
	// GetRepoInfo returns owner, repository name and provider parsed
	// from the configured remote URL.
	GetRepoInfo(ctx context.Context, remote string) (string, string, string, error)
	Fetch(ctx context.Context, remote, branch string) error
	// CreateBranchFrom creates branch at startPoint and switches to it.
	CreateBranchFrom(ctx context.Context, branch, startPoint string) error
	Checkout(ctx context.Context, branch string) error
	DeleteBranch(ctx context.Context, branch string) error
	CherryPick(ctx context.Context, sha string) error
	AbortCherryPick(ctx context.Context) error
	Push(ctx context.Context, remote, branch string, setUpstream bool) error
	// AmendCommitMessage rewrites the message of the tip commit,
	// keeping its content.
	AmendCommitMessage(ctx context.Context, message string) error
	// AutosquashRebase runs a non-interactive autosquash rebase onto
	// upstream, folding fixup commits into their targets.
	AutosquashRebase(ctx context.Context, upstream string) error
}
