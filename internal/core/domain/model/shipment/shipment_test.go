package shipment_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var assignTime = time.Date(2021, 3, 20, 9, 0, 0, 0, time.UTC)

func TestNewShipment(t *testing.T) {
	t.Run("valid shipment", func(t *testing.T) {
		s, err := shipment.NewShipment(7, "bike", assignTime)
		require.NoError(t, err)
		require.NoError(t, s.Validate())

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, uint64(7), s.CourierID())
		assert.Equal(t, "bike", s.CourierTypeCode())
		assert.Equal(t, assignTime, s.AssignTime())
		assert.Nil(t, s.CompleteTime())
		assert.True(t, s.IsActive())
	})

	t.Run("invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name       string
			courierID  uint64
			typeCode   string
			assignTime time.Time
		}{
			{"zero courier id", 0, "bike", assignTime},
			{"empty type code", 7, "", assignTime},
			{"zero assign time", 7, "bike", time.Time{}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := shipment.NewShipment(tc.courierID, tc.typeCode, tc.assignTime)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestRestoreShipment(t *testing.T) {
	id := uuid.New()
	completeTime := assignTime.Add(2 * time.Hour)

	t.Run("restores active shipment", func(t *testing.T) {
		s, err := shipment.RestoreShipment(id, 7, "foot", assignTime, nil)
		require.NoError(t, err)
		assert.Equal(t, id, s.ID())
		assert.True(t, s.IsActive())
	})

	t.Run("restores closed shipment", func(t *testing.T) {
		s, err := shipment.RestoreShipment(id, 7, "foot", assignTime, &completeTime)
		require.NoError(t, err)
		assert.False(t, s.IsActive())
		assert.Equal(t, completeTime, *s.CompleteTime())
	})
}

func TestShipment_Close(t *testing.T) {
	completeTime := assignTime.Add(45 * time.Minute)

	s, err := shipment.NewShipment(7, "car", assignTime)
	require.NoError(t, err)

	require.NoError(t, s.Close(completeTime))
	assert.False(t, s.IsActive())
	assert.Equal(t, completeTime, *s.CompleteTime())

	require.ErrorIs(t, s.Close(completeTime.Add(time.Minute)), shipment.ErrShipmentAlreadyClosed)
}
