package app

import (
	"io"
	"os"

	"github.com/gookit/color"
)

// colorEnabled reports whether report styling should be written to w. Output
// redirected to a file or pipe, or any non-file writer, stays plain.
func colorEnabled(cfg *Config, w io.Writer) bool {
	if cfg.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice == 0 {
		return false
	}
	return color.SupportColor()
}
