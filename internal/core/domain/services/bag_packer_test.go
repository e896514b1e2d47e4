package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCourier(t *testing.T, capacity string, regionIDs []uint64, shifts ...string) *courier.Courier {
	t.Helper()

	w, err := kernel.ParseWeight(capacity)
	require.NoError(t, err)
	courierType, err := courier.NewType("foot", w)
	require.NoError(t, err)

	intervals := make([]kernel.TimeInterval, 0, len(shifts))
	for _, s := range shifts {
		interval, err := kernel.ParseTimeInterval(s)
		require.NoError(t, err)
		intervals = append(intervals, interval)
	}

	c, err := courier.NewCourier(1, courierType, regionIDs, intervals)
	require.NoError(t, err)
	return c
}

func testOrder(t *testing.T, id uint64, weight string, regionID uint64, windows ...string) *order.Order {
	t.Helper()

	w, err := kernel.ParseWeight(weight)
	require.NoError(t, err)

	intervals := make([]kernel.TimeInterval, 0, len(windows))
	for _, s := range windows {
		interval, err := kernel.ParseTimeInterval(s)
		require.NoError(t, err)
		intervals = append(intervals, interval)
	}

	o, err := order.NewOrder(id, w, regionID, intervals)
	require.NoError(t, err)
	return o
}

func TestBagPacker_Pack(t *testing.T) {
	packer := services.NewBagPacker()

	t.Run("lightest orders first up to capacity", func(t *testing.T) {
		c := testCourier(t, "0.30", []uint64{1}, "08:00-12:00")
		candidates := []*order.Order{
			testOrder(t, 1, "0.23", 1, "09:00-11:00"),
			testOrder(t, 3, "0.01", 1, "09:00-10:00"),
			testOrder(t, 2, "0.50", 1, "09:00-10:00"),
		}

		bag, err := packer.Pack(c, candidates)
		require.NoError(t, err)

		assert.Equal(t, []uint64{1, 3}, bag.OrderIDs())
		assert.Equal(t, "0.24", bag.TotalWeight().String())
	})

	t.Run("empty candidate pool", func(t *testing.T) {
		c := testCourier(t, "10", []uint64{1}, "08:00-12:00")

		bag, err := packer.Pack(c, nil)
		require.NoError(t, err)
		assert.Zero(t, bag.Len())
	})

	t.Run("orders outside served regions are skipped", func(t *testing.T) {
		c := testCourier(t, "10", []uint64{1, 2}, "08:00-12:00")
		candidates := []*order.Order{
			testOrder(t, 1, "1", 1, "09:00-11:00"),
			testOrder(t, 2, "1", 3, "09:00-11:00"),
		}

		bag, err := packer.Pack(c, candidates)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1}, bag.OrderIDs())
	})

	t.Run("orders without overlapping delivery windows are skipped", func(t *testing.T) {
		c := testCourier(t, "10", []uint64{1}, "08:00-12:00")
		candidates := []*order.Order{
			testOrder(t, 1, "1", 1, "11:00-13:00"),
			testOrder(t, 2, "1", 1, "12:00-14:00"),
		}

		bag, err := packer.Pack(c, candidates)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1}, bag.OrderIDs())
	})

	t.Run("first overflow ends the shift pass", func(t *testing.T) {
		// 0.20 fits, 0.90 overflows, so the equally suitable 0.30
		// behind it is never reached within this shift.
		c := testCourier(t, "1", []uint64{1}, "08:00-12:00")
		candidates := []*order.Order{
			testOrder(t, 1, "0.20", 1, "09:00-11:00"),
			testOrder(t, 2, "0.90", 1, "09:00-11:00"),
			testOrder(t, 3, "0.95", 1, "09:00-11:00"),
		}

		bag, err := packer.Pack(c, candidates)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1}, bag.OrderIDs())
	})

	t.Run("no double counting across shifts", func(t *testing.T) {
		c := testCourier(t, "10", []uint64{1}, "08:00-12:00", "14:00-18:00")
		candidates := []*order.Order{
			testOrder(t, 1, "1", 1, "09:00-15:00"),
			testOrder(t, 2, "2", 1, "15:00-16:00"),
		}

		bag, err := packer.Pack(c, candidates)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 2}, bag.OrderIDs())
		assert.Equal(t, "3", bag.TotalWeight().String())
	})

	t.Run("later shift uses remaining capacity", func(t *testing.T) {
		c := testCourier(t, "1", []uint64{1}, "08:00-10:00", "14:00-16:00")
		candidates := []*order.Order{
			testOrder(t, 1, "0.80", 1, "08:00-09:00"),
			testOrder(t, 2, "0.30", 1, "14:00-15:00"),
			testOrder(t, 3, "0.10", 1, "14:00-15:00"),
		}

		bag, err := packer.Pack(c, candidates)
		require.NoError(t, err)
		assert.Equal(t, []uint64{1, 3}, bag.OrderIDs())
		assert.Equal(t, "0.9", bag.TotalWeight().String())
	})

	t.Run("equal weights break ties by ascending id", func(t *testing.T) {
		c := testCourier(t, "0.5", []uint64{1}, "08:00-12:00")
		candidates := []*order.Order{
			testOrder(t, 9, "0.25", 1, "09:00-11:00"),
			testOrder(t, 4, "0.25", 1, "09:00-11:00"),
			testOrder(t, 7, "0.25", 1, "09:00-11:00"),
		}

		bag, err := packer.Pack(c, candidates)
		require.NoError(t, err)
		assert.Equal(t, []uint64{4, 7}, bag.OrderIDs())
	})

	t.Run("invalid candidate is rejected", func(t *testing.T) {
		c := testCourier(t, "1", []uint64{1}, "08:00-12:00")

		_, err := packer.Pack(c, []*order.Order{{}})
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
