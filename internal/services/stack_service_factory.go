package services

import (
	"context"

	"github.com/thomas-vilte/stackmate/internal/config"
	"github.com/thomas-vilte/stackmate/internal/errors"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/logger"
	"github.com/thomas-vilte/stackmate/internal/ports"
	"github.com/thomas-vilte/stackmate/internal/vcs/github"
)

// StackServiceFactoryInterface lets commands create the service lazily,
// once they actually run inside a repository.
type StackServiceFactoryInterface interface {
	CreateStackService(ctx context.Context) (ports.StackService, error)
}

type StackServiceFactory struct {
	cfg   *config.Config
	trans *i18n.Translations
	git   ports.GitService
}

func NewStackServiceFactory(cfg *config.Config, trans *i18n.Translations, gitService ports.GitService) *StackServiceFactory {
	return &StackServiceFactory{
		cfg:   cfg,
		trans: trans,
		git:   gitService,
	}
}

// CreateStackService wires the git service with a VCS client for the
// repository's remote. A missing token or an unsupported provider does
// not fail here: operations that need the VCS report the recorded
// cause, the rest keep working.
func (f *StackServiceFactory) CreateStackService(ctx context.Context) (ports.StackService, error) {
	service := NewStackService(f.git, nil, f.cfg)

	owner, repo, provider, err := f.git.GetRepoInfo(ctx, f.cfg.Remote)
	if err != nil {
		service.vcsErr = err
		return service, nil
	}

	if provider != "github" {
		service.vcsErr = errors.ErrVCSNotSupported.WithContext("provider", provider)
		return service, nil
	}

	token := f.cfg.Token()
	if token == "" {
		service.vcsErr = errors.ErrTokenMissing
		return service, nil
	}

	logger.Debug(ctx, "github client ready", "owner", owner, "repo", repo)
	service.vcs = github.NewGitHubClient(owner, repo, token, f.trans)
	return service, nil
}
