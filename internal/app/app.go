package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/bikeshare/internal/catalog"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/fsutil"
)

// Streams bundles the terminal the App talks to. Logs go to Log so they do
// not interleave with the interactive conversation on Out.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Log io.Writer
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams Streams
	logger  *slog.Logger
	catalog *catalog.Catalog
	config  *Config
}

// NewApp is the constructor for the main application. It builds the logger,
// resolves the city catalog and checks the data directory.
func NewApp(streams Streams, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, streams.Log)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cat := catalog.Default(cfg.DataDir)
	if cfg.CatalogPath != "" {
		var err error
		cat, err = catalog.LoadFile(ctx, cfg.CatalogPath, cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load city catalog: %w", err)
		}
	}
	logger.Debug("City catalog ready.", "cities", cat.String())

	checkDataFiles(ctx, cfg.DataDir, cat)

	return &App{
		streams: streams,
		logger:  logger,
		catalog: cat,
		config:  cfg,
	}, nil
}

// Catalog returns the application's city catalog. This is primarily for testing.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// checkDataFiles logs which trip files are present. Missing files are not
// fatal here: the loader reports them when a user picks that city.
func checkDataFiles(ctx context.Context, dataDir string, cat *catalog.Catalog) {
	logger := ctxlog.FromContext(ctx)

	found, err := fsutil.FindFilesByExtension(dataDir, ".csv")
	if err != nil {
		logger.Warn("Cannot list data directory.", "data_dir", dataDir, "error", err)
	} else {
		logger.Debug("Discovered CSV files.", "data_dir", dataDir, "count", len(found), "files", found)
	}

	for _, e := range cat.Entries() {
		ok, err := fsutil.IsRegularFile(e.File)
		switch {
		case err != nil:
			logger.Warn("Cannot check trip file.", "city", e.City, "file", e.File, "error", err)
		case !ok:
			logger.Warn("Trip file not found.", "city", e.City, "file", e.File)
		}
	}
}
