package cityrepo_test

import (
	"context"
	"sync"
	"testing"

	"logistics/internal/adapters/out/memory/cityrepo"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type MemoryCityRepositoryTestSuite struct {
	suite.Suite
	repo *cityrepo.MemoryCityRepository
}

func (suite *MemoryCityRepositoryTestSuite) SetupTest() {
	suite.repo = cityrepo.NewMemoryCityRepository()
}

func (suite *MemoryCityRepositoryTestSuite) mustCity(name string, size city.Size, weather city.Weather) city.City {
	c, err := city.NewCity(name, size, weather)
	suite.Require().NoError(err)
	return c
}

func (suite *MemoryCityRepositoryTestSuite) TestAddAndGet() {
	ctx := suite.T().Context()
	moscow := suite.mustCity("Moscow", city.Large, city.Bad)

	suite.Require().NoError(suite.repo.Add(ctx, moscow))

	got, err := suite.repo.Get(ctx, "Moscow")
	suite.Require().NoError(err)
	suite.Equal(moscow, got)
}

func (suite *MemoryCityRepositoryTestSuite) TestAddDuplicate() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repo.Add(ctx, suite.mustCity("Kazan", city.Medium, city.Good)))

	err := suite.repo.Add(ctx, suite.mustCity("Kazan", city.Small, city.Bad))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	got, _ := suite.repo.Get(ctx, "Kazan")
	suite.Equal(city.Medium, got.Size())
}

func (suite *MemoryCityRepositoryTestSuite) TestAddRejectsZeroCity() {
	err := suite.repo.Add(suite.T().Context(), city.City{})

	suite.Require().ErrorIs(err, city.ErrCityIsNotConstructed)
}

func (suite *MemoryCityRepositoryTestSuite) TestGetUnknown() {
	_, err := suite.repo.Get(suite.T().Context(), "Atlantis")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MemoryCityRepositoryTestSuite) TestUpdateWeather() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repo.Add(ctx, suite.mustCity("Moscow", city.Large, city.Bad)))

	updated, err := suite.repo.UpdateWeather(ctx, "Moscow", city.Good)
	suite.Require().NoError(err)
	suite.Equal(city.Good, updated.Weather())

	got, _ := suite.repo.Get(ctx, "Moscow")
	suite.Equal(city.Good, got.Weather())
	suite.Equal(city.Large, got.Size())
}

func (suite *MemoryCityRepositoryTestSuite) TestUpdateWeatherInvalid() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repo.Add(ctx, suite.mustCity("Moscow", city.Large, city.Bad)))

	_, err := suite.repo.UpdateWeather(ctx, "Moscow", city.UnknownWeather)
	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	got, _ := suite.repo.Get(ctx, "Moscow")
	suite.Equal(city.Bad, got.Weather())
}

func (suite *MemoryCityRepositoryTestSuite) TestUpdateWeatherUnknownCity() {
	_, err := suite.repo.UpdateWeather(suite.T().Context(), "Atlantis", city.Good)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *MemoryCityRepositoryTestSuite) TestGetAllSortedByName() {
	ctx := suite.T().Context()
	for _, c := range []city.City{
		suite.mustCity("Saint Petersburg", city.Large, city.Bad),
		suite.mustCity("Kazan", city.Medium, city.Good),
		suite.mustCity("Moscow", city.Large, city.Bad),
	} {
		suite.Require().NoError(suite.repo.Add(ctx, c))
	}

	all, err := suite.repo.GetAll(ctx)
	suite.Require().NoError(err)

	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name())
	}
	suite.Equal([]string{"Kazan", "Moscow", "Saint Petersburg"}, names)
}

func (suite *MemoryCityRepositoryTestSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(suite.T().Context())
	cancel()

	suite.Require().ErrorIs(suite.repo.Add(ctx, suite.mustCity("Kazan", city.Medium, city.Good)), context.Canceled)
	_, err := suite.repo.Get(ctx, "Kazan")
	suite.Require().ErrorIs(err, context.Canceled)
	_, err = suite.repo.GetAll(ctx)
	suite.Require().ErrorIs(err, context.Canceled)
}

func (suite *MemoryCityRepositoryTestSuite) TestConcurrentWeatherUpdates() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repo.Add(ctx, suite.mustCity("Moscow", city.Large, city.Bad)))

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			weather := city.Good
			if i%2 == 0 {
				weather = city.Bad
			}
			_, _ = suite.repo.UpdateWeather(ctx, "Moscow", weather)
			_, _ = suite.repo.Get(ctx, "Moscow")
		}()
	}
	wg.Wait()

	got, err := suite.repo.Get(ctx, "Moscow")
	suite.Require().NoError(err)
	suite.Require().NoError(got.Validate())
}

func TestMemoryCityRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemoryCityRepositoryTestSuite))
}
