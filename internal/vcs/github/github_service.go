package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v68/github"
	"github.com/thomas-vilte/stackmate/internal/errors"
	"github.com/thomas-vilte/stackmate/internal/i18n"
	"github.com/thomas-vilte/stackmate/internal/models"
	"github.com/thomas-vilte/stackmate/internal/ports"
	"golang.org/x/oauth2"
)

var _ ports.VCSClient = (*GitHubClient)(nil)

// PullRequestsService is the slice of the go-github API the client uses.
type PullRequestsService interface {
	Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error)
	List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error)
}

type GitHubClient struct {
	prService PullRequestsService
	owner     string
	repo      string
	trans     *i18n.Translations
}

func NewGitHubClient(owner, repo, token string, trans *i18n.Translations) *GitHubClient {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &GitHubClient{
		prService: client.PullRequests,
		owner:     owner,
		repo:      repo,
		trans:     trans,
	}
}

func NewGitHubClientWithServices(prService PullRequestsService, owner, repo string, trans *i18n.Translations) *GitHubClient {
	return &GitHubClient{
		prService: prService,
		owner:     owner,
		repo:      repo,
		trans:     trans,
	}
}

func (ghc *GitHubClient) CreatePR(ctx context.Context, spec models.PRSpec) (models.StackedPR, error) {
	newPR := &github.NewPullRequest{
		Title: github.Ptr(spec.Title),
		Body:  github.Ptr(spec.Body),
		Head:  github.Ptr(spec.Head),
		Base:  github.Ptr(spec.Base),
		Draft: github.Ptr(spec.Draft),
	}

	pr, resp, err := ghc.prService.Create(ctx, ghc.owner, ghc.repo, newPR)
	if err != nil {
		if resp != nil {
			switch resp.StatusCode {
			case http.StatusUnauthorized:
				return models.StackedPR{}, errors.ErrGitHubTokenInvalid.WithError(err)
			case http.StatusForbidden:
				return models.StackedPR{}, errors.ErrGitHubInsufficientPerms.
					WithSuggestion(ghc.trans.GetMessage("error.token_scopes_help", 0, nil)).
					WithError(fmt.Errorf("%s: %w",
						ghc.trans.GetMessage("error.insufficient_permissions", 0, map[string]interface{}{
							"Owner": ghc.owner,
							"Repo":  ghc.repo,
						}), err))
			case http.StatusUnprocessableEntity:
				if strings.Contains(err.Error(), "already exists") {
					return models.StackedPR{}, errors.ErrPRAlreadyExists.WithContext("branch", spec.Head).WithError(err)
				}
			}
		}
		return models.StackedPR{}, errors.ErrCreatePR.WithContext("branch", spec.Head).
			WithError(fmt.Errorf("%s: %w", ghc.trans.GetMessage("error.create_pr", 0, map[string]interface{}{
				"Branch": spec.Head,
			}), err))
	}

	return toStackedPR(pr), nil
}

func (ghc *GitHubClient) ListStackedPRs(ctx context.Context, prefix string) ([]models.StackedPR, error) {
	opts := &github.PullRequestListOptions{
		State:     "open",
		Sort:      "created",
		Direction: "desc",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var stacked []models.StackedPR
	for {
		prs, resp, err := ghc.prService.List(ctx, ghc.owner, ghc.repo, opts)
		if err != nil {
			return nil, errors.ErrListPRs.WithError(fmt.Errorf("%s: %w",
				ghc.trans.GetMessage("error.list_prs", 0, nil), err))
		}

		for _, pr := range prs {
			if strings.HasPrefix(pr.GetHead().GetRef(), prefix) {
				stacked = append(stacked, toStackedPR(pr))
			}
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return stacked, nil
}

func toStackedPR(pr *github.PullRequest) models.StackedPR {
	return models.StackedPR{
		Number: pr.GetNumber(),
		Title:  pr.GetTitle(),
		Branch: pr.GetHead().GetRef(),
		Author: pr.GetUser().GetLogin(),
		URL:    pr.GetHTMLURL(),
		Draft:  pr.GetDraft(),
	}
}
