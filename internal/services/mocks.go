package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/stackmate/internal/models"
)

type MockGitService struct {
	mock.Mock
}

func (m *MockGitService) IsRepository(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockGitService) IsClean(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func (m *MockGitService) ResolveCommit(ctx context.Context, ref string) (models.Commit, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(models.Commit), args.Error(1)
}

func (m *MockGitService) GetCurrentBranch(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockGitService) GetRepoInfo(ctx context.Context, remote string) (string, string, string, error) {
	args := m.Called(ctx, remote)
	return args.String(0), args.String(1), args.String(2), args.Error(3)
}

func (m *MockGitService) Fetch(ctx context.Context, remote, branch string) error {
	args := m.Called(ctx, remote, branch)
	return args.Error(0)
}

func (m *MockGitService) CreateBranchFrom(ctx context.Context, branch, startPoint string) error {
	args := m.Called(ctx, branch, startPoint)
	return args.Error(0)
}

func (m *MockGitService) Checkout(ctx context.Context, branch string) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockGitService) DeleteBranch(ctx context.Context, branch string) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

func (m *MockGitService) CherryPick(ctx context.Context, sha string) error {
	args := m.Called(ctx, sha)
	return args.Error(0)
}

func (m *MockGitService) AbortCherryPick(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGitService) Push(ctx context.Context, remote, branch string, setUpstream bool) error {
	args := m.Called(ctx, remote, branch, setUpstream)
	return args.Error(0)
}

func (m *MockGitService) AmendCommitMessage(ctx context.Context, message string) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockGitService) AutosquashRebase(ctx context.Context, upstream string) error {
	args := m.Called(ctx, upstream)
	return args.Error(0)
}

type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) CreatePR(ctx context.Context, spec models.PRSpec) (models.StackedPR, error) {
	args := m.Called(ctx, spec)
	return args.Get(0).(models.StackedPR), args.Error(1)
}

func (m *MockVCSClient) ListStackedPRs(ctx context.Context, prefix string) ([]models.StackedPR, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StackedPR), args.Error(1)
}
