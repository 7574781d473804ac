// Package loader reads a city's trip file into a trip.Dataset and applies the
// month/day filters chosen for the session.
package loader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/specialistvlad/bikeshare/internal/catalog"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/filter"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// Column headers of the published trip files.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{
	ColStartTime,
	ColEndTime,
	ColTripDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
}

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// Load resolves the criteria's city through cat, reads its trip file and
// returns the trips matching the month and day filters.
func Load(ctx context.Context, cat *catalog.Catalog, c filter.Criteria) (*trip.Dataset, error) {
	ctx, logger := ctxlog.With(ctx, "city", c.City, "month", c.Month, "day", c.Day)

	path, ok := cat.Lookup(c.City)
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownCity, c.City, cat)
	}

	logger.Debug("Opening trip file.", "path", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	start := time.Now()
	records, fields, err := Read(ctx, path, f)
	if err != nil {
		return nil, err
	}
	logger.Debug("Trip file parsed.", "rows", len(records), "optional_fields", fields.String(), "elapsed", time.Since(start))

	kept := c.Apply(records)
	logger.Info("Trips loaded.", "rows", len(records), "matched", len(kept))

	return trip.NewDataset(c.City, path, fields, kept), nil
}

// columnIndex maps header names to their position in a row. Optional columns
// hold -1 when absent.
type columnIndex struct {
	startTime, endTime, duration int
	startStation, endStation     int
	userType, gender, birthYear  int
}

func newColumnIndex(header []string) (columnIndex, trip.FieldSet, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := pos[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, 0, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}

	optional := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	idx := columnIndex{
		startTime:    pos[ColStartTime],
		endTime:      pos[ColEndTime],
		duration:     pos[ColTripDuration],
		startStation: pos[ColStartStation],
		endStation:   pos[ColEndStation],
		userType:     pos[ColUserType],
		gender:       optional(ColGender),
		birthYear:    optional(ColBirthYear),
	}

	var fields trip.FieldSet
	if idx.gender >= 0 {
		fields = fields.With(trip.FieldGender)
	}
	if idx.birthYear >= 0 {
		fields = fields.With(trip.FieldBirthYear)
	}
	return idx, fields, nil
}

// Read parses every row of a trip file. path is only used in error messages.
// Which optional columns exist is decided once from the header.
func Read(ctx context.Context, path string, r io.Reader) ([]trip.Record, trip.FieldSet, error) {
	logger := ctxlog.FromContext(ctx)

	reader := csv.NewReader(r)
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, 0, &ParseError{Path: path, Err: errors.New("file is empty")}
	}
	if err != nil {
		return nil, 0, csvError(path, err)
	}

	idx, fields, err := newColumnIndex(header)
	if err != nil {
		return nil, 0, &ParseError{Path: path, Line: 1, Err: err}
	}
	logger.Debug("Trip file header checked.", "columns", len(header), "optional_fields", fields.String())

	var records []trip.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, 0, csvError(path, err)
		}
		line, _ := reader.FieldPos(0)

		rec, col, err := parseRow(row, idx)
		if err != nil {
			return nil, 0, &ParseError{Path: path, Line: line, Column: col, Err: err}
		}
		records = append(records, rec)
	}
	return records, fields, nil
}

// parseRow converts one CSV row. On failure it also returns the offending column.
func parseRow(row []string, idx columnIndex) (trip.Record, string, error) {
	var rec trip.Record
	var err error

	if rec.StartTime, err = parseTime(row[idx.startTime]); err != nil {
		return rec, ColStartTime, err
	}
	if rec.EndTime, err = parseTime(row[idx.endTime]); err != nil {
		return rec, ColEndTime, err
	}
	if rec.DurationSeconds, err = parseDuration(row[idx.duration]); err != nil {
		return rec, ColTripDuration, err
	}

	rec.StartStation = strings.TrimSpace(row[idx.startStation])
	rec.EndStation = strings.TrimSpace(row[idx.endStation])
	rec.UserType = strings.TrimSpace(row[idx.userType])

	if idx.gender >= 0 {
		rec.Gender = strings.TrimSpace(row[idx.gender])
	}
	if idx.birthYear >= 0 {
		if rec.BirthYear, err = parseBirthYear(row[idx.birthYear]); err != nil {
			return rec, ColBirthYear, err
		}
	}
	return rec, "", nil
}

func parseTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

func parseDuration(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", raw)
	}
	return d, nil
}

// parseBirthYear accepts "1989" and "1989.0". A blank cell yields 0.
func parseBirthYear(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	y, err := strconv.ParseFloat(raw, 64)
	if err != nil || y != math.Trunc(y) || y < 1 || y > 9999 {
		return 0, fmt.Errorf("invalid birth year %q", raw)
	}
	return int(y), nil
}

func csvError(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: path, Line: pe.Line, Err: pe.Err}
	}
	return &FileAccessError{Path: path, Err: err}
}
