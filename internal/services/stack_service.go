package services

import (
	"context"
	"fmt"

	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/errors"
	"github.com/thomas-vilte/stackmate/internal/git"
	"github.com/thomas-vilte/stackmate/internal/logger"
	"github.com/thomas-vilte/stackmate/internal/models"
	"github.com/thomas-vilte/stackmate/internal/ports"
)

var _ ports.StackService = (*StackService)(nil)

// StackService implements the stacked-commit workflow. Every operation
// is a linear sequence of git invocations; any transplant failure
// aborts the in-progress state and restores the main line before
// returning, so a failed run leaves the repository as it found it.
type StackService struct {
	git ports.GitService
	vcs ports.VCSClient
	cfg *config.Config
	// vcsErr remembers why no VCS client is available, so commands
	// that need one can report the actual cause.
	vcsErr error
}

func NewStackService(gitService ports.GitService, vcs ports.VCSClient, cfg *config.Config) *StackService {
	return &StackService{
		git: gitService,
		vcs: vcs,
		cfg: cfg,
	}
}

func (s *StackService) CreateStackedPR(ctx context.Context, ref string) (models.StackedPR, error) {
	if err := s.checkRepoState(ctx); err != nil {
		return models.StackedPR{}, err
	}
	if s.vcs == nil {
		return models.StackedPR{}, s.missingVCSError()
	}

	if ref == "" {
		ref = s.cfg.MainBranch
	}

	commit, err := s.git.ResolveCommit(ctx, ref)
	if err != nil {
		return models.StackedPR{}, err
	}

	branch := git.BranchNameFor(s.cfg.BranchPrefix, commit.Subject)
	remoteMain := s.cfg.Remote + "/" + s.cfg.MainBranch

	logger.Info(ctx, "creating stacked branch", "branch", branch, "commit", commit.ShortSHA())

	if err := s.git.Fetch(ctx, s.cfg.Remote, s.cfg.MainBranch); err != nil {
		return models.StackedPR{}, err
	}

	if err := s.git.CreateBranchFrom(ctx, branch, remoteMain); err != nil {
		return models.StackedPR{}, err
	}

	if err := s.git.CherryPick(ctx, commit.SHA); err != nil {
		// Restore the pre-invocation state: abort the transplant,
		// get back on the main line, drop the fresh branch.
		if abortErr := s.git.AbortCherryPick(ctx); abortErr != nil {
			logger.Warn(ctx, "cherry-pick abort failed", "error", abortErr)
		}
		if coErr := s.git.Checkout(ctx, s.cfg.MainBranch); coErr != nil {
			return models.StackedPR{}, coErr
		}
		if delErr := s.git.DeleteBranch(ctx, branch); delErr != nil {
			logger.Warn(ctx, "branch cleanup failed", "branch", branch, "error", delErr)
		}
		return models.StackedPR{}, err
	}

	if err := s.git.Push(ctx, s.cfg.Remote, branch, true); err != nil {
		return models.StackedPR{}, s.backToMain(ctx, err)
	}

	pr, err := s.vcs.CreatePR(ctx, models.PRSpec{
		Title: commit.Subject,
		Body:  commit.Body,
		Head:  branch,
		Base:  s.cfg.MainBranch,
		Draft: s.cfg.DraftPRs,
	})
	if err != nil {
		return models.StackedPR{}, s.backToMain(ctx, err)
	}

	if err := s.git.Checkout(ctx, s.cfg.MainBranch); err != nil {
		return models.StackedPR{}, err
	}

	return pr, nil
}

func (s *StackService) UpdateStackedPR(ctx context.Context, ref string) (models.StackUpdate, error) {
	if err := s.checkRepoState(ctx); err != nil {
		return models.StackUpdate{}, err
	}

	target, err := s.git.ResolveCommit(ctx, ref)
	if err != nil {
		return models.StackUpdate{}, err
	}

	tip, err := s.git.ResolveCommit(ctx, s.cfg.MainBranch)
	if err != nil {
		return models.StackUpdate{}, err
	}

	branch := git.BranchNameFor(s.cfg.BranchPrefix, target.Subject)

	logger.Info(ctx, "updating stacked branch", "branch", branch, "commit", tip.ShortSHA())

	if err := s.git.Checkout(ctx, branch); err != nil {
		return models.StackUpdate{}, err
	}

	if err := s.git.CherryPick(ctx, tip.SHA); err != nil {
		if abortErr := s.git.AbortCherryPick(ctx); abortErr != nil {
			logger.Warn(ctx, "cherry-pick abort failed", "error", abortErr)
		}
		return models.StackUpdate{}, s.backToMain(ctx, err)
	}

	if err := s.git.Push(ctx, s.cfg.Remote, branch, false); err != nil {
		return models.StackUpdate{}, s.backToMain(ctx, err)
	}

	if err := s.git.Checkout(ctx, s.cfg.MainBranch); err != nil {
		return models.StackUpdate{}, err
	}

	// Fold the just-transplanted commit back into the target on the
	// main line: mark the tip as a fixup, then autosquash only the
	// target and its fixup.
	if err := s.git.AmendCommitMessage(ctx, "fixup! "+target.Subject); err != nil {
		return models.StackUpdate{}, err
	}

	if err := s.git.AutosquashRebase(ctx, target.SHA+"^"); err != nil {
		return models.StackUpdate{}, err
	}

	return models.StackUpdate{
		Branch: branch,
		Target: target,
		Tip:    tip,
	}, nil
}

func (s *StackService) ListStackedPRs(ctx context.Context) ([]models.StackedPR, error) {
	if s.vcs == nil {
		return nil, s.missingVCSError()
	}
	return s.vcs.ListStackedPRs(ctx, s.cfg.BranchPrefix)
}

func (s *StackService) checkRepoState(ctx context.Context) error {
	if !s.git.IsRepository(ctx) {
		return errors.ErrNotInGitRepo
	}

	clean, err := s.git.IsClean(ctx)
	if err != nil {
		return err
	}
	if !clean {
		return errors.ErrDirtyWorkTree
	}

	// The workflow checkouts back to the main branch when it is done,
	// so warn when invoked from somewhere else. Detached HEAD and the
	// like only matter if a later git step trips over it.
	if branch, err := s.git.GetCurrentBranch(ctx); err == nil && branch != s.cfg.MainBranch {
		logger.Warn(ctx, "not on the main branch", "branch", branch, "main", s.cfg.MainBranch)
	}
	return nil
}

// backToMain restores the main line after a failure mid-operation and
// keeps the original error as the one reported.
func (s *StackService) backToMain(ctx context.Context, cause error) error {
	if err := s.git.Checkout(ctx, s.cfg.MainBranch); err != nil {
		return fmt.Errorf("%w (and failed to restore %s: %v)", cause, s.cfg.MainBranch, err)
	}
	return cause
}

func (s *StackService) missingVCSError() error {
	if s.vcsErr != nil {
		return s.vcsErr
	}
	return errors.ErrTokenMissing
}
