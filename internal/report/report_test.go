package report

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/specialistvlad/bikeshare/internal/loader"
	"github.com/specialistvlad/bikeshare/internal/testutil"
	"github.com/specialistvlad/bikeshare/internal/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataset(t *testing.T, city, csv string) *trip.Dataset {
	t.Helper()
	records, fields, err := loader.Read(context.Background(), city+".csv", strings.NewReader(csv))
	require.NoError(t, err)
	return trip.NewDataset(city, city+".csv", fields, records)
}

// fixedClock advances by one second on every call.
func fixedClock() func() time.Time {
	now := time.Date(2017, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func TestAll_Chicago(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, WithClock(fixedClock()))

	p.All(context.Background(), dataset(t, "chicago", testutil.ChicagoCSV))
	got := out.String()

	for _, want := range []string{
		TitleTimes,
		"The most popular month is March (4 trips).",
		"The most popular day is Monday (3 trips).",
		"The most popular start hour is 8 (4 trips).",
		TitleStations,
		"The most commonly used start station is A St (4 trips).",
		"The most commonly used end station is C St (3 trips).",
		"The most popular start-end station pair is: A St - B St (2 trips).",
		TitleDurations,
		"The total travel time is 3831 seconds (1h3m51s).",
		"The mean travel time is 547.29 seconds (9m7s).",
		TitleUsers,
		"Subscriber  5",
		"Customer    2",
		"Count of bikeshare use by user-specified gender:",
		"Male    4",
		"The earliest year of birth is 1980. The most recent year of birth is 1992. The most common year of birth is 1990.",
		"This took 1.0000 seconds.",
	} {
		assert.Contains(t, got, want)
	}
	assert.Equal(t, 4, strings.Count(got, strings.Repeat("-", SeparatorWidth)))
	assert.NotContains(t, got, "\x1b[", "colors are off by default")
}

func TestUsers_Washington(t *testing.T) {
	out := &bytes.Buffer{}
	New(out).Users(context.Background(), dataset(t, "washington", testutil.WashingtonCSV))

	assert.Contains(t, out.String(), "No gender data available.")
	assert.Contains(t, out.String(), "No birth year data available.")
}

func TestSections_EmptyDataset(t *testing.T) {
	out := &bytes.Buffer{}
	ds := trip.NewDataset("chicago", "chicago.csv", 0, nil)

	New(out).All(context.Background(), ds)

	assert.Equal(t, 4, strings.Count(out.String(), MsgNoData))
	assert.NotContains(t, out.String(), "NaN")
}

func TestRows(t *testing.T) {
	out := &bytes.Buffer{}
	ds := dataset(t, "chicago", testutil.ChicagoCSV)

	New(out).Rows(5, ds.Slice(5, 7), ds.Fields())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "#"))
	assert.Contains(t, lines[0], "Birth Year")
	assert.True(t, strings.HasPrefix(lines[1], "5 "))
	assert.Contains(t, lines[2], "2017-06-23 15:09:32")
	assert.Contains(t, lines[2], "1992")
}

func TestRows_WithoutOptionalColumns(t *testing.T) {
	out := &bytes.Buffer{}
	ds := dataset(t, "washington", testutil.WashingtonCSV)

	New(out).Rows(0, ds.Records(), ds.Fields())

	assert.NotContains(t, out.String(), "Gender")
	assert.Contains(t, out.String(), "489.066")
}

func TestError_Plain(t *testing.T) {
	out := &bytes.Buffer{}
	New(out, WithColor(false)).Error(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", out.String())
}
