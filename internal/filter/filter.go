// Package filter holds the month/day/city selection a user makes for one
// session iteration, the enumerations it is validated against, and the
// predicate the loader applies to every trip.
package filter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// All disables the month or day filter.
const All = "all"

const (
	monthRule = "required,month"
	dayRule   = "required,day"
)

// Months lists the months covered by the trip files, in calendar order.
var Months = []string{"january", "february", "march", "april", "may", "june"}

// Days lists the weekday names accepted by the day filter.
var Days = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var validate = newValidator()

// newValidator registers the "month" and "day" tags so Months and Days stay
// the only lists of accepted values.
func newValidator() *validator.Validate {
	v := validator.New()
	for tag, values := range map[string][]string{"month": Months, "day": Days} {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == All || slices.Contains(values, s)
		})
		if err != nil {
			panic(fmt.Errorf("failed to register %q validation: %w", tag, err))
		}
	}
	return v
}

// Criteria is the immutable selection for one session iteration.
type Criteria struct {
	City  string `validate:"required"`
	Month string `validate:"required,month"`
	Day   string `validate:"required,day"`
}

// Normalize lower-cases s and trims surrounding whitespace.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ValidMonth reports whether s (already normalized) is a month name from
// Months or All.
func ValidMonth(s string) bool {
	return validate.Var(s, monthRule) == nil
}

// ValidDay reports whether s (already normalized) is a weekday name or All.
func ValidDay(s string) bool {
	return validate.Var(s, dayRule) == nil
}

// New builds a Criteria from raw user text and validates it.
func New(city, month, day string) (Criteria, error) {
	c := Criteria{City: Normalize(city), Month: Normalize(month), Day: Normalize(day)}
	if err := c.Validate(); err != nil {
		return Criteria{}, err
	}
	return c, nil
}

// Validate checks the struct tags. Whether City names a known city is the
// catalog's concern.
func (c Criteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// MonthNumber returns the calendar month selected, or false when the month
// filter is off.
func (c Criteria) MonthNumber() (time.Month, bool) {
	i := slices.Index(Months, c.Month)
	if i < 0 {
		return 0, false
	}
	return time.Month(i + 1), true
}

// Weekday returns the weekday selected, or false when the day filter is off.
func (c Criteria) Weekday() (time.Weekday, bool) {
	wd, ok := weekdays[c.Day]
	return wd, ok
}

// Match reports whether r satisfies the month and day filters.
func (c Criteria) Match(r trip.Record) bool {
	if m, ok := c.MonthNumber(); ok && r.Month() != m {
		return false
	}
	if wd, ok := c.Weekday(); ok && r.Weekday() != wd {
		return false
	}
	return true
}

// Apply returns the records matching c, preserving order.
func (c Criteria) Apply(records []trip.Record) []trip.Record {
	if c.Month == All && c.Day == All {
		return records
	}
	kept := records[:0:0]
	for _, r := range records {
		if c.Match(r) {
			kept = append(kept, r)
		}
	}
	return kept
}

func (c Criteria) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", c.City, c.Month, c.Day)
}

func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", field))
		case "month":
			msgs = append(msgs, fmt.Sprintf("month must be one of: %s %s", All, strings.Join(Months, " ")))
		case "day":
			msgs = append(msgs, fmt.Sprintf("day must be one of: %s %s", All, strings.Join(Days, " ")))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", field))
		}
	}
	return fmt.Errorf("invalid filter: %s", strings.Join(msgs, "; "))
}
