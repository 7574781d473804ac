package stats

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/bikeshare/internal/filter"
	"github.com/specialistvlad/bikeshare/internal/loader"
	"github.com/specialistvlad/bikeshare/internal/testutil"
	"github.com/specialistvlad/bikeshare/internal/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, city, csv, month string) *trip.Dataset {
	t.Helper()
	records, fields, err := loader.Read(context.Background(), city+".csv", strings.NewReader(csv))
	require.NoError(t, err)
	c := filter.Criteria{City: city, Month: month, Day: filter.All}
	return trip.NewDataset(city, city+".csv", fields, c.Apply(records))
}

func emptyDataset() *trip.Dataset {
	return trip.NewDataset("chicago", "chicago.csv", trip.FieldSet(0).With(trip.FieldGender), nil)
}

func TestMode_TieBreaksToSmallest(t *testing.T) {
	testCases := []struct {
		name     string
		values   []int
		expected Count[int]
	}{
		{name: "clear winner", values: []int{3, 1, 3, 2}, expected: Count[int]{Value: 3, Count: 2}},
		{name: "two-way tie", values: []int{9, 4, 9, 4, 7}, expected: Count[int]{Value: 4, Count: 2}},
		{name: "all distinct", values: []int{17, 8, 12}, expected: Count[int]{Value: 8, Count: 1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Mode(tc.values)
			require.True(t, ok)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, ok := Mode([]string{})
	assert.False(t, ok)
}

func TestFrequencies_Order(t *testing.T) {
	got := Frequencies([]string{"b", "a", "c", "b", "a", "d", "b"})
	expected := []Count[string]{
		{Value: "b", Count: 3},
		{Value: "a", Count: 2},
		{Value: "c", Count: 1},
		{Value: "d", Count: 1},
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("frequencies mismatch (-want +got):\n%s", diff)
	}
}

func TestTimes(t *testing.T) {
	s, err := Times(fixture(t, "chicago", testutil.ChicagoCSV, filter.All))
	require.NoError(t, err)

	assert.Equal(t, Count[time.Month]{Value: time.March, Count: 4}, s.Month)
	assert.Equal(t, Count[time.Weekday]{Value: time.Monday, Count: 3}, s.Weekday)
	assert.Equal(t, Count[int]{Value: 8, Count: 4}, s.Hour)
}

func TestStations_PairIsFrequencyMode(t *testing.T) {
	s, err := Stations(fixture(t, "chicago", testutil.ChicagoCSV, filter.All))
	require.NoError(t, err)

	assert.Equal(t, Count[string]{Value: "A St", Count: 4}, s.Start)
	assert.Equal(t, Count[string]{Value: "C St", Count: 3}, s.End)
	// "A St - B St" and "A St - C St" both occur twice; the smaller label wins.
	// The lexicographic maximum, "C St - A St", occurs only once.
	assert.Equal(t, Count[string]{Value: "A St - B St", Count: 2}, s.Pair)
}

func TestDurations(t *testing.T) {
	s, err := Durations(fixture(t, "chicago", testutil.ChicagoCSV, filter.All))
	require.NoError(t, err)
	assert.Equal(t, 7, s.Trips)
	assert.InDelta(t, 3831.0, s.TotalSeconds, 1e-9)
	assert.InDelta(t, 3831.0/7, s.MeanSeconds, 1e-9)
	assert.Equal(t, 3831*time.Second, s.Total())
}

func TestDurations_MarchMatchesManualRecomputation(t *testing.T) {
	ds := fixture(t, "chicago", testutil.ChicagoCSV, "march")

	var total float64
	for _, r := range ds.Records() {
		total += r.DurationSeconds
	}

	s, err := Durations(ds)
	require.NoError(t, err)
	assert.InDelta(t, total, s.TotalSeconds, 1e-9)
	assert.InDelta(t, total/float64(ds.Len()), s.MeanSeconds, 1e-9)
	assert.InDelta(t, 712.5, s.MeanSeconds, 1e-9)
}

func TestEmptyDataset(t *testing.T) {
	ds := emptyDataset()

	_, err := Times(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = Stations(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = Durations(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)
	_, err = Users(ds)
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestUsers_AllFields(t *testing.T) {
	s, err := Users(fixture(t, "chicago", testutil.ChicagoCSV, filter.All))
	require.NoError(t, err)

	expected := UserStats{
		UserTypes: []Count[string]{{Value: "Subscriber", Count: 5}, {Value: "Customer", Count: 2}},
		Gender: GenderStats{
			Status: Available,
			Counts: []Count[string]{{Value: "Male", Count: 4}, {Value: "Female", Count: 2}},
		},
		BirthYear: BirthYearStats{
			Status:     Available,
			Earliest:   1980,
			MostRecent: 1992,
			MostCommon: Count[int]{Value: 1990, Count: 3},
		},
	}
	if diff := cmp.Diff(expected, s); diff != "" {
		t.Errorf("user stats mismatch (-want +got):\n%s", diff)
	}
}

func TestUsers_WashingtonReportsUnavailable(t *testing.T) {
	s, err := Users(fixture(t, "washington", testutil.WashingtonCSV, filter.All))
	require.NoError(t, err)

	assert.Equal(t, Unavailable, s.Gender.Status)
	assert.Empty(t, s.Gender.Counts)
	assert.Equal(t, Unavailable, s.BirthYear.Status)
	assert.Equal(t, []Count[string]{{Value: "Subscriber", Count: 2}, {Value: "Customer", Count: 1}}, s.UserTypes)
}

func TestUsers_BlankColumnReportsNoData(t *testing.T) {
	records := []trip.Record{{StartTime: time.Now(), UserType: "Customer"}}
	fields := trip.FieldSet(0).With(trip.FieldGender).With(trip.FieldBirthYear)

	s, err := Users(trip.NewDataset("chicago", "chicago.csv", fields, records))
	require.NoError(t, err)
	assert.Equal(t, NoData, s.Gender.Status)
	assert.Equal(t, NoData, s.BirthYear.Status)
}

func TestReporters_AreIdempotent(t *testing.T) {
	ds := fixture(t, "chicago", testutil.ChicagoCSV, filter.All)
	before := ds.Records()

	t1, _ := Times(ds)
	s1, _ := Stations(ds)
	d1, _ := Durations(ds)
	u1, _ := Users(ds)

	t2, _ := Times(ds)
	s2, _ := Stations(ds)
	d2, _ := Durations(ds)
	u2, _ := Users(ds)

	assert.Equal(t, t1, t2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, d1, d2)
	assert.Equal(t, u1, u2)
	assert.Equal(t, before, ds.Records(), "reporters must not modify the dataset")
}
