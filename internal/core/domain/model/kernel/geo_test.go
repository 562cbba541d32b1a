package kernel_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("creates_valid_point", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(55.75, 37.62)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
		assert.InDelta(t, 55.75, point.Lat(), 1e-9)
		assert.InDelta(t, 37.62, point.Lng(), 1e-9)
	})

	t.Run("accepts_boundary_coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{
			{kernel.MinLatitude, kernel.MinLongitude},
			{kernel.MaxLatitude, kernel.MaxLongitude},
			{0, 0},
		} {
			_, err := kernel.NewGeoPoint(coords[0], coords[1])
			require.NoError(t, err)
		}
	})

	t.Run("rejects_latitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.5, 0)
		require.Error(t, err)

		_, err = kernel.NewGeoPoint(-90.5, 0)
		require.Error(t, err)
	})

	t.Run("rejects_longitude_out_of_range", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, 180.5)
		require.Error(t, err)

		_, err = kernel.NewGeoPoint(0, -180.5)
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var point kernel.GeoPoint
		require.Error(t, point.Validate())
	})
}

func TestGeoPoint_DistanceKm(t *testing.T) {
	t.Run("one_hundredth_degree_is_about_one_point_eleven_km", func(t *testing.T) {
		// Given
		a, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(0.01, 0)
		require.NoError(t, err)

		// When
		distance := a.DistanceKm(b)

		// Then
		assert.InDelta(t, 1.11, distance, 0.01)
	})

	t.Run("distance_is_symmetric", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(10, 20)
		b, _ := kernel.NewGeoPoint(10.5, 19.5)

		assert.InDelta(t, a.DistanceKm(b), b.DistanceKm(a), 1e-9)
	})

	t.Run("distance_to_self_is_zero", func(t *testing.T) {
		a, _ := kernel.NewGeoPoint(42, 42)
		assert.Zero(t, a.DistanceKm(a))
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	a, _ := kernel.NewGeoPoint(1, 2)
	b, _ := kernel.NewGeoPoint(1, 2)
	c, _ := kernel.NewGeoPoint(2, 1)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
