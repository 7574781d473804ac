package stats

import (
	"slices"

	"github.com/specialistvlad/bikeshare/internal/trip"
)

// Availability describes whether an optional section could be computed.
type Availability int

const (
	// Available means the section holds real numbers.
	Available Availability = iota
	// Unavailable means the city's file has no such column.
	Unavailable
	// NoData means the column exists but every filtered row left it blank.
	NoData
)

func (a Availability) String() string {
	switch a {
	case Available:
		return "available"
	case Unavailable:
		return "unavailable"
	case NoData:
		return "no data"
	default:
		return "unknown"
	}
}

// GenderStats counts trips per gender.
type GenderStats struct {
	Status Availability
	Counts []Count[string]
}

// BirthYearStats summarizes rider birth years.
type BirthYearStats struct {
	Status     Availability
	Earliest   int
	MostRecent int
	MostCommon Count[int]
}

// UserStats holds the user demographics of a dataset.
type UserStats struct {
	UserTypes []Count[string]
	Gender    GenderStats
	BirthYear BirthYearStats
}

// Users computes user type counts and, where the dataset exposes them,
// gender counts and birth year statistics. Blank cells are skipped.
func Users(ds *trip.Dataset) (UserStats, error) {
	records := ds.Records()
	if len(records) == 0 {
		return UserStats{}, ErrEmptyDataset
	}

	var s UserStats

	types := make([]string, 0, len(records))
	for _, r := range records {
		if r.UserType != "" {
			types = append(types, r.UserType)
		}
	}
	s.UserTypes = Frequencies(types)

	s.Gender = genderStats(ds, records)
	s.BirthYear = birthYearStats(ds, records)
	return s, nil
}

func genderStats(ds *trip.Dataset, records []trip.Record) GenderStats {
	if !ds.Has(trip.FieldGender) {
		return GenderStats{Status: Unavailable}
	}
	genders := make([]string, 0, len(records))
	for _, r := range records {
		if r.Gender != "" {
			genders = append(genders, r.Gender)
		}
	}
	if len(genders) == 0 {
		return GenderStats{Status: NoData}
	}
	return GenderStats{Status: Available, Counts: Frequencies(genders)}
}

func birthYearStats(ds *trip.Dataset, records []trip.Record) BirthYearStats {
	if !ds.Has(trip.FieldBirthYear) {
		return BirthYearStats{Status: Unavailable}
	}
	years := make([]int, 0, len(records))
	for _, r := range records {
		if r.BirthYear != 0 {
			years = append(years, r.BirthYear)
		}
	}
	if len(years) == 0 {
		return BirthYearStats{Status: NoData}
	}
	mode, _ := Mode(years)
	return BirthYearStats{
		Status:     Available,
		Earliest:   slices.Min(years),
		MostRecent: slices.Max(years),
		MostCommon: mode,
	}
}
