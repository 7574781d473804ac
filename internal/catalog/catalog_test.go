package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default("/data")

	assert.Equal(t, []string{"chicago", "new york city", "washington"}, c.Cities())
	assert.Equal(t, "chicago, new york city, washington", c.String())

	file, ok := c.Lookup("  New York City ")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/data", "new_york_city.csv"), file)

	assert.False(t, c.Has("boston"))
}

func TestCities_ReturnsCopy(t *testing.T) {
	c := Default(".")
	cities := c.Cities()
	cities[0] = "boston"

	assert.True(t, c.Has("chicago"))
	assert.False(t, c.Has("boston"))
	assert.Equal(t, "chicago", c.Cities()[0])
}

func TestNew_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		entries []Entry
		errMsg  string
	}{
		{name: "no entries", entries: nil, errMsg: ErrEmpty.Error()},
		{name: "blank city", entries: []Entry{{City: " ", File: "x.csv"}}, errMsg: "empty city name"},
		{name: "blank file", entries: []Entry{{City: "x", File: ""}}, errMsg: "has no file"},
		{
			name:    "duplicate city ignoring case",
			entries: []Entry{{City: "Chicago", File: "a.csv"}, {City: "chicago", File: "b.csv"}},
			errMsg:  "declared more than once",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(".", tc.entries...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dataDir := t.TempDir()
	path := filepath.Join(dataDir, "cities.hcl")
	content := `
city "Chicago" {
  file = "${data_dir}/chi.csv"
}

city "boston" {
  file = "bos.csv"
}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, err := LoadFile(context.Background(), path, dataDir)
	require.NoError(t, err)

	expected := []Entry{
		{City: "chicago", File: filepath.Join(dataDir, "chi.csv")},
		{City: "boston", File: filepath.Join(dataDir, "bos.csv")},
	}
	if diff := cmp.Diff(expected, c.Entries()); diff != "" {
		t.Errorf("catalog entries mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "syntax error", content: `city "x" {`, errMsg: "failed to parse"},
		{name: "missing file attribute", content: `city "x" {}`, errMsg: "failed to decode"},
		{name: "unknown variable", content: `city "x" { file = "${nope}/x.csv" }`, errMsg: "failed to decode"},
		{name: "no cities", content: ``, errMsg: ErrEmpty.Error()},
		{
			name:    "duplicate city",
			content: "city \"x\" { file = \"a.csv\" }\ncity \"X\" { file = \"b.csv\" }\n",
			errMsg:  "declared more than once",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "cities.hcl")
			require.NoError(t, os.WriteFile(path, []byte(tc.content), 0o644))

			_, err := LoadFile(context.Background(), path, dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}
