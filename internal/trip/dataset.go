package trip

import (
	"slices"
	"strings"
)

// Field names an optional column that only some cities provide.
type Field uint8

const (
	FieldGender Field = 1 << iota
	FieldBirthYear
)

func (f Field) String() string {
	switch f {
	case FieldGender:
		return "gender"
	case FieldBirthYear:
		return "birth year"
	default:
		return "unknown"
	}
}

// FieldSet records which optional fields a loaded dataset exposes.
type FieldSet uint8

// Has reports whether f is part of the set.
func (s FieldSet) Has(f Field) bool { return s&FieldSet(f) != 0 }

// With returns a copy of the set that also contains f.
func (s FieldSet) With(f Field) FieldSet { return s | FieldSet(f) }

func (s FieldSet) String() string {
	var names []string
	for _, f := range []Field{FieldGender, FieldBirthYear} {
		if s.Has(f) {
			names = append(names, f.String())
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Dataset is the filtered, read-only collection of trips for one city.
type Dataset struct {
	city    string
	source  string
	fields  FieldSet
	records []Record
}

// NewDataset takes ownership of records; callers must not modify the slice afterwards.
func NewDataset(city, source string, fields FieldSet, records []Record) *Dataset {
	return &Dataset{
		city:    city,
		source:  source,
		fields:  fields,
		records: records,
	}
}

// City is the catalog name of the city the trips belong to.
func (d *Dataset) City() string { return d.city }

// Source is the path of the trip file the dataset was read from.
func (d *Dataset) Source() string { return d.source }

// Fields reports which optional columns the dataset exposes.
func (d *Dataset) Fields() FieldSet { return d.fields }

// Len returns the number of trips in the dataset.
func (d *Dataset) Len() int { return len(d.records) }

// Has reports whether the dataset exposes the optional field f.
func (d *Dataset) Has(f Field) bool { return d.fields.Has(f) }

// Records returns a copy of every trip in load order.
func (d *Dataset) Records() []Record { return slices.Clone(d.records) }

// Slice returns a copy of the trips in [from, to), clamped to the dataset
// bounds. Out of range requests return an empty slice.
func (d *Dataset) Slice(from, to int) []Record {
	from = max(from, 0)
	to = min(to, len(d.records))
	if from >= to {
		return []Record{}
	}
	return slices.Clone(d.records[from:to])
}
