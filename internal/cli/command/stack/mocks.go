package stack

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/stackmate/internal/models"
	"github.com/thomas-vilte/stackmate/internal/ports"
)

type MockStackService struct {
	mock.Mock
}

func (m *MockStackService) CreateStackedPR(ctx context.Context, ref string) (models.StackedPR, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(models.StackedPR), args.Error(1)
}

func (m *MockStackService) UpdateStackedPR(ctx context.Context, ref string) (models.StackUpdate, error) {
	args := m.Called(ctx, ref)
	return args.Get(0).(models.StackUpdate), args.Error(1)
}

func (m *MockStackService) ListStackedPRs(ctx context.Context) ([]models.StackedPR, error) {
	args := m.Called(ctx)
	var prs []models.StackedPR
	if v := args.Get(0); v != nil {
		prs = v.([]models.StackedPR)
	}
	return prs, args.Error(1)
}

type MockStackServiceFactory struct {
	mock.Mock
}

func (m *MockStackServiceFactory) CreateStackService(ctx context.Context) (ports.StackService, error) {
	args := m.Called(ctx)
	var service ports.StackService
	if v := args.Get(0); v != nil {
		service = v.(ports.StackService)
	}
	return service, args.Error(1)
}
