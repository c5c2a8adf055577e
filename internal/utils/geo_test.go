package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKM(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		assert.Equal(t, 0.0, HaversineKM(-6.2, 106.8, -6.2, 106.8))
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		distance := HaversineKM(0, 0, 0, 1)
		assert.InDelta(t, 111.19, distance, 0.1)
	})

	t.Run("symmetric in its arguments", func(t *testing.T) {
		forward := HaversineKM(-6.2, 106.8, -6.9, 107.6)
		backward := HaversineKM(-6.9, 107.6, -6.2, 106.8)
		assert.InDelta(t, forward, backward, 1e-9)
	})
}

func TestSurgeCell(t *testing.T) {
	tests := []struct {
		name string
		lat  float64
		lon  float64
		want string
	}{
		{"positive coordinates", 1.234, 103.876, "123:10387"},
		{"negative latitude floors downward", -6.2001, 106.8167, "-621:10681"},
		{"origin", 0, 0, "0:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SurgeCell(tt.lat, tt.lon))
		})
	}
}

func TestSurgeCellBucketsNearbyPointsTogether(t *testing.T) {
	assert.Equal(t, SurgeCell(-6.2001, 106.8101), SurgeCell(-6.2099, 106.8199))
	assert.NotEqual(t, SurgeCell(-6.2001, 106.8101), SurgeCell(-6.2101, 106.8101))
}

func TestValidCoordinate(t *testing.T) {
	assert.True(t, ValidCoordinate(0, 0))
	assert.True(t, ValidCoordinate(-90, 180))
	assert.True(t, ValidCoordinate(90, -180))
	assert.False(t, ValidCoordinate(90.1, 0))
	assert.False(t, ValidCoordinate(0, -180.1))
}

func TestEncodeLocation(t *testing.T) {
	hash := EncodeLocation(-6.2088, 106.8456)
	assert.Len(t, hash, 9)
}
