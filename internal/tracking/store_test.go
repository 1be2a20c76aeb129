package tracking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveShipment(t *testing.T) {
	store := NewDemoStore()

	t.Run("exact match", func(t *testing.T) {
		shipment, err := store.ResolveShipment("FX9876543210")
		require.NoError(t, err)
		assert.Equal(t, "fedex", shipment.CourierCode)
	})

	t.Run("case-insensitive with whitespace", func(t *testing.T) {
		shipment, err := store.ResolveShipment("  fx9876543210  ")
		require.NoError(t, err)
		assert.Equal(t, "FX9876543210", shipment.TrackingNumber)
	})

	t.Run("not found carries examples", func(t *testing.T) {
		_, err := store.ResolveShipment("DOES-NOT-EXIST")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrShipmentNotFound)

		var notFound *NotFoundError
		require.True(t, errors.As(err, &notFound))
		assert.Equal(t, "DOES-NOT-EXIST", notFound.TrackingNumber)
		assert.Len(t, notFound.Examples, 5)
		assert.Contains(t, err.Error(), "Try:")
	})

	t.Run("partial tracking number does not resolve", func(t *testing.T) {
		_, err := store.ResolveShipment("FX98765")
		require.Error(t, err)
	})
}

func TestListShipmentsByCourier(t *testing.T) {
	store := NewDemoStore()

	assert.Len(t, store.ListShipmentsByCourier("fedex"), 1)
	assert.Len(t, store.ListShipmentsByCourier("FEDEX"), 1)
	assert.Empty(t, store.ListShipmentsByCourier("nope"))
}

func TestSearch(t *testing.T) {
	store := NewDemoStore()

	t.Run("empty query returns everything", func(t *testing.T) {
		assert.Len(t, store.Search(""), 5)
	})

	t.Run("partial match", func(t *testing.T) {
		results := store.Search("9876")
		require.Len(t, results, 1)
		assert.Equal(t, "FX9876543210", results[0].TrackingNumber)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		results := store.Search("tnt")
		require.Len(t, results, 1)
		assert.Equal(t, "TNT123456789", results[0].TrackingNumber)
	})
}

func TestAllReturnsCopy(t *testing.T) {
	store := NewDemoStore()

	all := store.All()
	require.Len(t, all, 5)
	all[0].TrackingNumber = "MUTATED"

	again := store.All()
	assert.NotEqual(t, "MUTATED", again[0].TrackingNumber)
}
