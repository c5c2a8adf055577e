package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRideStatus(t *testing.T) {
	for _, s := range []string{"requested", "assigned", "accepted", "in_progress", "completed"} {
		t.Run(s, func(t *testing.T) {
			status, err := ParseRideStatus(s)
			assert.NoError(t, err)
			assert.Equal(t, RideStatus(s), status)
		})
	}

	t.Run("unknown status is rejected", func(t *testing.T) {
		_, err := ParseRideStatus("cancelled")
		assert.Error(t, err)
	})

	t.Run("empty status is rejected", func(t *testing.T) {
		_, err := ParseRideStatus("")
		assert.Error(t, err)
	})
}

func TestRideStatusValid(t *testing.T) {
	assert.True(t, RideStatusInProgress.Valid())
	assert.False(t, RideStatus("paused").Valid())
}
