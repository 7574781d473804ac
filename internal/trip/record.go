package trip

import "time"

// Record is a single row of a city's trip file.
type Record struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds float64
	StartStation    string
	EndStation      string
	UserType        string

	// Gender is empty when the cell is blank or the city has no gender column.
	Gender string
	// BirthYear is 0 when the cell is blank or the city has no birth year column.
	BirthYear int
}

// Month is the calendar month the trip started in.
func (r Record) Month() time.Month { return r.StartTime.Month() }

// Weekday is the day of the week the trip started on.
func (r Record) Weekday() time.Weekday { return r.StartTime.Weekday() }

// Hour is the hour of day (0-23) the trip started in.
func (r Record) Hour() int { return r.StartTime.Hour() }

// StationPair labels the trip as "Start - End".
func (r Record) StationPair() string {
	return r.StartStation + " - " + r.EndStation
}
