package queries_test

import (
	"context"
	"errors"
	"testing"

	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/city"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(ctx context.Context, c city.City) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCityRepository) Get(ctx context.Context, name string) (city.City, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(city.City), args.Error(1)
}

func (m *MockCityRepository) UpdateWeather(ctx context.Context, name string, weather city.Weather) (city.City, error) {
	args := m.Called(ctx, name, weather)
	return args.Get(0).(city.City), args.Error(1)
}

func (m *MockCityRepository) GetAll(ctx context.Context) ([]city.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]city.City), args.Error(1)
}

func TestGetAllCitiesQuery_NotConstructedViaConstructor(t *testing.T) {
	require.NoError(t, queries.NewGetAllCitiesQuery().Validate())
	assert.ErrorIs(t, queries.GetAllCitiesQuery{}.Validate(), queries.ErrGetAllCitiesQueryIsNotConstructed)
}

func TestGetAllCitiesQueryHandler_Handle(t *testing.T) {
	t.Run("maps cities to read models", func(t *testing.T) {
		ctx := t.Context()
		kazan, _ := city.NewCity("Kazan", city.Medium, city.Good)
		moscow, _ := city.NewCity("Moscow", city.Large, city.Bad)

		repo := new(MockCityRepository)
		repo.On("GetAll", ctx).Return([]city.City{kazan, moscow}, nil).Once()

		got, err := queries.NewGetAllCitiesQueryHandler(repo).Handle(ctx, queries.NewGetAllCitiesQuery())

		require.NoError(t, err)
		assert.Equal(t, []queries.GetAllCitiesQueryResponse{
			{Name: "Kazan", Size: "Medium", Weather: "Good"},
			{Name: "Moscow", Size: "Large", Weather: "Bad"},
		}, got)
		repo.AssertExpectations(t)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		ctx := t.Context()
		storeErr := errors.New("store unavailable")
		repo := new(MockCityRepository)
		repo.On("GetAll", ctx).Return(nil, storeErr)

		_, err := queries.NewGetAllCitiesQueryHandler(repo).Handle(ctx, queries.NewGetAllCitiesQuery())

		require.ErrorIs(t, err, storeErr)
	})

	t.Run("rejects zero query", func(t *testing.T) {
		repo := new(MockCityRepository)

		_, err := queries.NewGetAllCitiesQueryHandler(repo).Handle(t.Context(), queries.GetAllCitiesQuery{})

		require.ErrorIs(t, err, queries.ErrGetAllCitiesQueryIsNotConstructed)
		repo.AssertNotCalled(t, "GetAll", mock.Anything)
	})
}
