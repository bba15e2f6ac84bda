package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	moscow, _ := city.NewCity("Moscow", city.Large, city.Bad)
	kazan, _ := city.NewCity("Kazan", city.Medium, city.Good)
	wishes, _ := order.NewClientWishes(order.WithPreferredSpeed(500))

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, moscow, kazan, 1000, wishes)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, moscow, o.Origin())
		assert.Equal(t, kazan, o.Destination())
		assert.InDelta(t, 1000.0, o.Weight(), 1e-9)
		assert.Equal(t, wishes, o.Wishes())
		assert.Equal(t, "Moscow -> Kazan", o.Route())
		assert.True(t, o.HasBadWeather())
	})

	t.Run("should allow same origin and destination", func(t *testing.T) {
		o, err := order.NewOrder(validID, kazan, kazan, 1, order.NoWishes())

		require.NoError(t, err)
		assert.False(t, o.HasBadWeather())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, moscow, kazan, 1000, wishes)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with zero value cities", func(t *testing.T) {
		var nowhere city.City

		o, err := order.NewOrder(validID, nowhere, nowhere, 1000, wishes)

		require.ErrorIs(t, err, city.ErrCityIsNotConstructed)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "origin:")
		assert.Contains(t, err.Error(), "destination:")
	})

	t.Run("should fail with non-positive weight", func(t *testing.T) {
		for _, weight := range []float64{0, -50} {
			o, err := order.NewOrder(validID, moscow, kazan, weight, wishes)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Nil(t, o)
			assert.Contains(t, err.Error(), "weight is invalid")
		}
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var nowhere city.City

		o, err := order.NewOrder(invalidID, nowhere, kazan, -1, wishes)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "City must be created")
		assert.Contains(t, err.Error(), "weight is invalid")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		o := &order.Order{}

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}
