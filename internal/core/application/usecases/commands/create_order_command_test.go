package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	weight := mustWeight(t, "0.23")
	intervals := []kernel.TimeInterval{mustInterval(t, "09:00-11:00")}

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(1, weight, 2, intervals)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, uint64(1), cmd.OrderID())
		assert.Equal(t, "0.23", cmd.Weight().String())
		assert.Equal(t, uint64(2), cmd.RegionID())
		assert.Len(t, cmd.DeliveryIntervals(), 1)
	})

	t.Run("invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name      string
			orderID   uint64
			weight    kernel.Weight
			regionID  uint64
			intervals []kernel.TimeInterval
		}{
			{"zero id", 0, weight, 2, intervals},
			{"unconstructed weight", 1, kernel.Weight{}, 2, intervals},
			{"zero region", 1, weight, 0, intervals},
			{"no intervals", 1, weight, 2, nil},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewCreateOrderCommand(tc.orderID, tc.weight, tc.regionID, tc.intervals)
				require.Error(t, err)
			})
		}
	})
}
