package stack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/thomas-vilte/stackmate/internal/models"
)

func TestUpdateCommand(t *testing.T) {
	t.Run("updates the stacked branch for the target commit", func(t *testing.T) {
		config, translations := setupStackTest(t)

		mockService := &MockStackService{}
		mockFactory := &MockStackServiceFactory{}
		mockFactory.On("CreateStackService", mock.Anything).Return(mockService, nil)
		mockService.On("UpdateStackedPR", mock.Anything, "abc123").Return(models.StackUpdate{
			Branch: "pr/add-widget-parser",
			Target: models.Commit{SHA: "abc123def4567890", Subject: "Add widget parser"},
			Tip:    models.Commit{SHA: "fff111", Subject: "Handle empty input"},
		}, nil)

		cmd := NewUpdateCommandFactory(mockFactory).CreateCommand(translations, config)
		output, err := runCommand(t, cmd, "update", "abc123")

		require.NoError(t, err)
		assert.Contains(t, output, "pr/add-widget-parser")
		assert.Contains(t, output, "abc123de")
		mockService.AssertExpectations(t)
	})

	t.Run("requires a commit reference", func(t *testing.T) {
		config, translations := setupStackTest(t)

		mockFactory := &MockStackServiceFactory{}

		cmd := NewUpdateCommandFactory(mockFactory).CreateCommand(translations, config)
		_, err := runCommand(t, cmd, "update")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "commit reference is required")
		mockFactory.AssertNotCalled(t, "CreateStackService", mock.Anything)
	})

	t.Run("propagates service errors", func(t *testing.T) {
		config, translations := setupStackTest(t)

		serviceErr := errors.New("branch not found")
		mockService := &MockStackService{}
		mockFactory := &MockStackServiceFactory{}
		mockFactory.On("CreateStackService", mock.Anything).Return(mockService, nil)
		mockService.On("UpdateStackedPR", mock.Anything, "abc123").Return(models.StackUpdate{}, serviceErr)

		cmd := NewUpdateCommandFactory(mockFactory).CreateCommand(translations, config)
		_, err := runCommand(t, cmd, "update", "abc123")

		assert.ErrorIs(t, err, serviceErr)
	})
}
