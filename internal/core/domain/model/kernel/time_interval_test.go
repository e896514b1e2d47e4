package kernel_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, hour, minute int) kernel.TimeOfDay {
	t.Helper()
	tod, err := kernel.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

func mustInterval(t *testing.T, s string) kernel.TimeInterval {
	t.Helper()
	interval, err := kernel.ParseTimeInterval(s)
	require.NoError(t, err)
	return interval
}

func TestNewTimeOfDay(t *testing.T) {
	t.Run("valid times", func(t *testing.T) {
		testCases := []struct {
			hour, minute int
			expected     string
		}{
			{0, 0, "00:00"},
			{8, 5, "08:05"},
			{23, 59, "23:59"},
		}

		for _, tc := range testCases {
			tod, err := kernel.NewTimeOfDay(tc.hour, tc.minute)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, tod.String())
			assert.Equal(t, tc.hour, tod.Hour())
			assert.Equal(t, tc.minute, tod.Minute())
		}
	})

	t.Run("invalid times", func(t *testing.T) {
		testCases := []struct {
			name         string
			hour, minute int
		}{
			{"negative hour", -1, 0},
			{"hour past midnight", 24, 0},
			{"negative minute", 10, -1},
			{"minute too large", 10, 60},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewTimeOfDay(tc.hour, tc.minute)
				require.Error(t, err)
			})
		}
	})
}

func TestParseTimeOfDay(t *testing.T) {
	t.Run("valid strings", func(t *testing.T) {
		tod, err := kernel.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, tod.Hour())
		assert.Equal(t, 30, tod.Minute())
	})

	t.Run("invalid strings", func(t *testing.T) {
		for _, s := range []string{"", "9:30", "09-30", "0930", "ab:cd", "09:30:00", "25:00"} {
			_, err := kernel.ParseTimeOfDay(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestNewTimeInterval(t *testing.T) {
	t.Run("valid interval", func(t *testing.T) {
		interval, err := kernel.NewTimeInterval(mustTimeOfDay(t, 8, 0), mustTimeOfDay(t, 12, 0))
		require.NoError(t, err)
		assert.Equal(t, "08:00-12:00", interval.String())
		require.NoError(t, interval.Validate())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := kernel.NewTimeInterval(mustTimeOfDay(t, 12, 0), mustTimeOfDay(t, 8, 0))
		require.Error(t, err)

		_, err = kernel.NewTimeInterval(mustTimeOfDay(t, 8, 0), mustTimeOfDay(t, 8, 0))
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var interval kernel.TimeInterval
		require.ErrorIs(t, interval.Validate(), kernel.ErrTimeIntervalIsNotConstructed)
	})
}

func TestParseTimeInterval(t *testing.T) {
	t.Run("valid strings", func(t *testing.T) {
		interval, err := kernel.ParseTimeInterval("09:00-18:00")
		require.NoError(t, err)
		assert.Equal(t, "09:00", interval.Start().String())
		assert.Equal(t, "18:00", interval.End().String())
	})

	t.Run("invalid strings", func(t *testing.T) {
		for _, s := range []string{"", "09:00", "09:00-", "-18:00", "09:00 - 18:00", "18:00-09:00"} {
			_, err := kernel.ParseTimeInterval(s)
			require.Error(t, err, "expected %q to be rejected", s)
		}
	})
}

func TestTimeInterval_Overlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     string
		overlaps bool
	}{
		{"identical", "08:00-12:00", "08:00-12:00", true},
		{"contained", "08:00-12:00", "09:00-10:00", true},
		{"partial overlap", "08:00-12:00", "11:00-14:00", true},
		{"single minute overlap", "08:00-12:00", "11:59-13:00", true},
		{"touching at boundary is disjoint", "08:00-12:00", "12:00-14:00", false},
		{"disjoint", "08:00-10:00", "14:00-16:00", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustInterval(t, tc.a)
			b := mustInterval(t, tc.b)
			assert.Equal(t, tc.overlaps, a.Overlaps(b))
			assert.Equal(t, tc.overlaps, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}
