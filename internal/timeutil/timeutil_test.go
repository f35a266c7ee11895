package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"18:00", 1080},
		{"23:59", 1439},
	}
	for _, c := range cases {
		got, err := ToMinutes(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestToMinutesRejectsMalformed(t *testing.T) {
	// "12:3a" and "1a:30" keep the right length and colon but hide
	// non-digits; they must not parse as times.
	for _, in := range []string{"", "9:00", "24:00", "12:60", "ab:cd", "12-30", "12:345", "12:3a", "1a:30", "-1:30"} {
		_, err := ToMinutes(in)
		assert.Error(t, err, in)
	}
}

func TestAddMinutes(t *testing.T) {
	cases := []struct {
		start    string
		duration int
		want     string
	}{
		{"09:00", 30, "09:30"},
		{"09:45", 30, "10:15"},
		{"10:00", 90, "11:30"},
		{"23:50", 30, "00:20"}, // wraps past midnight
		{"12:00", 0, "12:00"},
	}
	for _, c := range cases {
		got, err := AddMinutes(c.start, c.duration)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "%s + %d", c.start, c.duration)
	}
}

func TestCrossesMidnight(t *testing.T) {
	crosses, err := CrossesMidnight("23:50", 30)
	require.NoError(t, err)
	assert.True(t, crosses)

	crosses, err = CrossesMidnight("23:00", 60)
	require.NoError(t, err)
	assert.False(t, crosses, "ending exactly at midnight is allowed")

	crosses, err = CrossesMidnight("09:00", 45)
	require.NoError(t, err)
	assert.False(t, crosses)
}

func TestWeekdayKey(t *testing.T) {
	cases := map[string]string{
		"2024-06-02": "domingo",
		"2024-06-03": "segunda",
		"2024-06-04": "terca",
		"2024-06-05": "quarta",
		"2024-06-06": "quinta",
		"2024-06-07": "sexta",
		"2024-06-08": "sabado",
	}
	for date, want := range cases {
		got, err := WeekdayKey(date)
		require.NoError(t, err)
		assert.Equal(t, want, got, date)
	}

	_, err := WeekdayKey("03/06/2024")
	assert.Error(t, err)
}
