package commands_test

import (
	"context"
	"log/slog"

	"logistics/internal/core/domain/model/agency"
	"logistics/internal/core/domain/model/city"

	"github.com/stretchr/testify/mock"
)

type MockCityRepository struct{ mock.Mock }

func (m *MockCityRepository) Add(ctx context.Context, c city.City) error {
	args := m.Called(ctx, c)
	return args.Error(0)
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

type MockResultObserver struct{ mock.Mock }

func (m *MockResultObserver) Observe(result agency.Result) {
	m.Called(result)
}

// fixedRandomizer returns the same draw every time.
type fixedRandomizer float64

func (f fixedRandomizer) Float64() float64 { return float64(f) }

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
