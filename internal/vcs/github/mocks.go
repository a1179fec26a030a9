package github

import (
	"context"

	"github.com/google/go-github/v68/github"
	"github.com/stretchr/testify/mock"
)

type MockPRService struct {
	mock.Mock
}

func (m *MockPRService) Create(ctx context.Context, owner, repo string, pull *github.NewPullRequest) (*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, pull)
	var pr *github.PullRequest
	if v := args.Get(0); v != nil {
		pr = v.(*github.PullRequest)
	}
	var resp *github.Response
	if v := args.Get(1); v != nil {
		resp = v.(*github.Response)
	}
	return pr, resp, args.Error(2)
}

func (m *MockPRService) List(ctx context.Context, owner, repo string, opts *github.PullRequestListOptions) ([]*github.PullRequest, *github.Response, error) {
	args := m.Called(ctx, owner, repo, opts)
	var prs []*github.PullRequest
	if v := args.Get(0); v != nil {
		prs = v.([]*github.PullRequest)
	}
	var resp *github.Response
	if v := args.Get(1); v != nil {
		resp = v.(*github.Response)
	}
	return prs, resp, args.Error(2)
}
