package loader

import (
	"errors"
	"fmt"
)

// ErrUnknownCity is returned when the criteria name a city the catalog does not know.
var ErrUnknownCity = errors.New("unknown city")

// FileAccessError reports a trip file that could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read trip file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// ParseError reports malformed content in a trip file. Line is 1-based; a
// zero Column means the problem is not tied to a single cell.
type ParseError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("malformed trip file %s, line %d, column %q: %v", e.Path, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("malformed trip file %s, line %d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("malformed trip file %s: %v", e.Path, e.Err)
	}
}

func (e *ParseError) Unwrap() error { return e.Err }
