package commands_test

import (
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddCityCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddCityCommand("Kazan", city.Medium, city.Good)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Kazan", cmd.Name())
	assert.Equal(t, city.Medium, cmd.Size())
	assert.Equal(t, city.Good, cmd.Weather())
}

func TestNewAddCityCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddCityCommand("", city.UnknownSize, city.UnknownWeather)

	require.ErrorIs(t, err, commands.ErrCityNameIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAddCityCommand_ZeroValue(t *testing.T) {
	var cmd commands.AddCityCommand

	assert.Equal(t, commands.ErrAddCityCommandIsNotConstructed, cmd.Validate())
}

func TestAddCityCommandHandler_Handle(t *testing.T) {
	t.Run("should add city to repository", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockCityRepository)
		expected, _ := city.NewCity("Kazan", city.Medium, city.Good)
		repo.On("Add", ctx, expected).Return(nil).Once()

		handler := commands.NewAddCityCommandHandler(repo)
		cmd, _ := commands.NewAddCityCommand("Kazan", city.Medium, city.Good)

		err := handler.Handle(ctx, cmd)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("should propagate repository errors", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockCityRepository)
		repoErr := errors.New("duplicate")
		repo.On("Add", ctx, mock.AnythingOfType("city.City")).Return(repoErr).Once()

		handler := commands.NewAddCityCommandHandler(repo)
		cmd, _ := commands.NewAddCityCommand("Kazan", city.Medium, city.Good)

		err := handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, repoErr)
	})

	t.Run("should reject unconstructed command", func(t *testing.T) {
		repo := new(MockCityRepository)
		handler := commands.NewAddCityCommandHandler(repo)

		err := handler.Handle(t.Context(), commands.AddCityCommand{})

		require.ErrorIs(t, err, commands.ErrAddCityCommandIsNotConstructed)
		repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}
