// Package stats computes the descriptive statistics shown after each load:
// popular travel times, popular stations, trip durations and user
// demographics.
//
// Every function is a pure pass over a trip.Dataset. "Most popular" always
// means the statistical mode, with ties going to the smallest value (the
// earliest month, weekday in Sunday-first order, hour, or the
// lexicographically smallest station name).
package stats

import (
	"errors"
	"time"

	"github.com/specialistvlad/bikeshare/internal/trip"
)

// ErrEmptyDataset is returned when no trips are left to aggregate.
var ErrEmptyDataset = errors.New("no trips match the selected filters")

// TimeStats holds the most frequent travel times.
type TimeStats struct {
	Month   Count[time.Month]
	Weekday Count[time.Weekday]
	Hour    Count[int]
}

// Times computes the most common month, weekday and start hour.
func Times(ds *trip.Dataset) (TimeStats, error) {
	records := ds.Records()
	if len(records) == 0 {
		return TimeStats{}, ErrEmptyDataset
	}

	months := make([]time.Month, len(records))
	weekdays := make([]time.Weekday, len(records))
	hours := make([]int, len(records))
	for i, r := range records {
		months[i] = r.Month()
		weekdays[i] = r.Weekday()
		hours[i] = r.Hour()
	}

	var s TimeStats
	s.Month, _ = Mode(months)
	s.Weekday, _ = Mode(weekdays)
	s.Hour, _ = Mode(hours)
	return s, nil
}

// StationStats holds the most used stations and the most frequent trip.
type StationStats struct {
	Start Count[string]
	End   Count[string]
	// Pair is labelled "Start - End".
	Pair Count[string]
}

// Stations computes the most common start station, end station and
// start/end combination.
func Stations(ds *trip.Dataset) (StationStats, error) {
	records := ds.Records()
	if len(records) == 0 {
		return StationStats{}, ErrEmptyDataset
	}

	starts := make([]string, len(records))
	ends := make([]string, len(records))
	pairs := make([]string, len(records))
	for i, r := range records {
		starts[i] = r.StartStation
		ends[i] = r.EndStation
		pairs[i] = r.StationPair()
	}

	var s StationStats
	s.Start, _ = Mode(starts)
	s.End, _ = Mode(ends)
	s.Pair, _ = Mode(pairs)
	return s, nil
}

// DurationStats aggregates trip durations in seconds.
type DurationStats struct {
	Trips        int
	TotalSeconds float64
	MeanSeconds  float64
}

// Total returns the total travel time as a time.Duration.
func (s DurationStats) Total() time.Duration { return seconds(s.TotalSeconds) }

// Mean returns the mean travel time as a time.Duration.
func (s DurationStats) Mean() time.Duration { return seconds(s.MeanSeconds) }

// Durations computes the total and mean trip duration.
func Durations(ds *trip.Dataset) (DurationStats, error) {
	records := ds.Records()
	if len(records) == 0 {
		return DurationStats{}, ErrEmptyDataset
	}

	var total float64
	for _, r := range records {
		total += r.DurationSeconds
	}
	return DurationStats{
		Trips:        len(records),
		TotalSeconds: total,
		MeanSeconds:  total / float64(len(records)),
	}, nil
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
