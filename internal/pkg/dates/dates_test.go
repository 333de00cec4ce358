package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndFormatRoundTrip(t *testing.T) {
	d, err := Parse("2025-06-10")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", Format(d))
	assert.Equal(t, time.Local, d.Location())

	_, err = Parse("10.06.2025")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	ts := time.Date(2025, 6, 10, 14, 35, 7, 12, time.Local)
	got := Truncate(ts)
	assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local), got)
}

func TestYesterdayIsOneDayBeforeToday(t *testing.T) {
	assert.Equal(t, Today().AddDate(0, 0, -1), Yesterday())
	assert.True(t, Yesterday().Before(Today()))
}

func TestIsWeekend(t *testing.T) {
	// 2025-06-07 is a Saturday, 2025-06-08 a Sunday, 2025-06-09 a Monday.
	sat, _ := Parse("2025-06-07")
	sun, _ := Parse("2025-06-08")
	mon, _ := Parse("2025-06-09")

	assert.True(t, IsWeekend(sat))
	assert.True(t, IsWeekend(sun))
	assert.False(t, IsWeekend(mon))
}

func TestRangeInclusive(t *testing.T) {
	start, _ := Parse("2025-06-09")
	end, _ := Parse("2025-06-13")

	days := Range(start, end)
	require.Len(t, days, 5)
	assert.Equal(t, "2025-06-09", Format(days[0]))
	assert.Equal(t, "2025-06-13", Format(days[4]))

	single := Range(start, start)
	require.Len(t, single, 1)

	assert.Empty(t, Range(end, start))
}

func TestAt(t *testing.T) {
	day, _ := Parse("2025-06-09")

	ts, ok := At(day, "08:30")
	require.True(t, ok)
	assert.Equal(t, 8, ts.Hour())
	assert.Equal(t, 30, ts.Minute())
	assert.Equal(t, "2025-06-09", Format(ts))

	_, ok = At(day, "25:00")
	assert.False(t, ok)
	_, ok = At(day, "")
	assert.False(t, ok)
}

func TestSameDay(t *testing.T) {
	a := time.Date(2025, 6, 9, 1, 0, 0, 0, time.Local)
	b := time.Date(2025, 6, 9, 23, 59, 0, 0, time.Local)
	c := time.Date(2025, 6, 10, 0, 0, 0, 0, time.Local)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(b, c))
}
