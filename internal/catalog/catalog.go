// Package catalog maps city names to the trip files that back them. A
// Catalog is built once at startup, either from the built-in table or from an
// HCL catalog file, and never changes afterwards.
package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

// ErrEmpty is returned when a catalog would contain no cities.
var ErrEmpty = errors.New("catalog has no cities")

// Entry binds a city name to its trip file.
type Entry struct {
	City string
	File string
}

// defaultEntries is the built-in city table. File names are relative to the
// data directory.
var defaultEntries = []Entry{
	{City: "chicago", File: "chicago.csv"},
	{City: "new york city", File: "new_york_city.csv"},
	{City: "washington", File: "washington.csv"},
}

// Catalog is an immutable city -> file table that remembers declaration order.
type Catalog struct {
	files map[string]string
	order []string
}

// Default returns the built-in three-city catalog rooted at dataDir.
func Default(dataDir string) *Catalog {
	c, err := New(dataDir, defaultEntries...)
	if err != nil {
		panic(fmt.Errorf("built-in catalog is invalid: %w", err))
	}
	return c
}

// New builds a catalog from entries. City names are normalized to lower case
// and relative file paths are resolved against dataDir.
func New(dataDir string, entries ...Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		files: make(map[string]string, len(entries)),
		order: make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		city := normalize(e.City)
		if city == "" {
			return nil, errors.New("catalog entry has an empty city name")
		}
		if strings.TrimSpace(e.File) == "" {
			return nil, fmt.Errorf("city %q has no file", city)
		}
		if _, dup := c.files[city]; dup {
			return nil, fmt.Errorf("city %q is declared more than once", city)
		}
		file := e.File
		if !filepath.IsAbs(file) {
			file = filepath.Join(dataDir, file)
		}
		c.files[city] = filepath.Clean(file)
		c.order = append(c.order, city)
	}
	return c, nil
}

// Lookup returns the trip file for city. Matching ignores case and
// surrounding whitespace.
func (c *Catalog) Lookup(city string) (string, bool) {
	file, ok := c.files[normalize(city)]
	return file, ok
}

// Has reports whether city is a catalog key.
func (c *Catalog) Has(city string) bool {
	_, ok := c.Lookup(city)
	return ok
}

// Cities returns the city names in declaration order.
func (c *Catalog) Cities() []string {
	return slices.Clone(c.order)
}

// Entries returns every city with its resolved file, in declaration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.order))
	for _, city := range c.order {
		out = append(out, Entry{City: city, File: c.files[city]})
	}
	return out
}

// Len returns the number of cities.
func (c *Catalog) Len() int { return len(c.order) }

// String lists the city names, e.g. "chicago, new york city, washington".
func (c *Catalog) String() string {
	return strings.Join(c.order, ", ")
}

func normalize(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
