// Package session drives the interactive loop: collect a selection, load the
// matching trips, print the statistics, offer the raw rows, and ask whether
// to start over. Nothing carries over from one iteration to the next.
package session

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/specialistvlad/bikeshare/internal/browse"
	"github.com/specialistvlad/bikeshare/internal/catalog"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/filter"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// AskRestart is the question closing every iteration.
const AskRestart = "\nWould you like to restart? y/n "

// Collector gathers a selection and answers yes/no questions.
type Collector interface {
	Collect(ctx context.Context) (filter.Criteria, error)
	browse.Confirmer
}

// Reporter prints the statistics sections and the raw row pages.
type Reporter interface {
	All(ctx context.Context, ds *trip.Dataset)
	Error(err error)
	browse.Renderer
}

// LoadFunc loads the trips matching a selection.
type LoadFunc func(ctx context.Context, cat *catalog.Catalog, c filter.Criteria) (*trip.Dataset, error)

// Session is one interactive run made of any number of iterations.
type Session struct {
	catalog   *catalog.Catalog
	collector Collector
	reporter  Reporter
	load      LoadFunc
}

// New creates a Session.
func New(cat *catalog.Catalog, collector Collector, reporter Reporter, load LoadFunc) *Session {
	return &Session{
		catalog:   cat,
		collector: collector,
		reporter:  reporter,
		load:      load,
	}
}

// Run repeats iterations until the user declines to restart or input ends.
// End of input is a normal way to finish and is not returned as an error.
func (s *Session) Run(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	for iteration := 1; ; iteration++ {
		iterCtx, iterLogger := ctxlog.With(ctx, "session_id", uuid.NewString(), "iteration", iteration)
		iterLogger.Debug("Session iteration started.")

		err := s.iterate(iterCtx)
		if errors.Is(err, io.EOF) {
			logger.Debug("Input closed, ending session.")
			return nil
		}
		if err != nil {
			return err
		}

		again, err := s.collector.Confirm(iterCtx, AskRestart)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			logger.Debug("User declined to restart.", "iterations", iteration)
			return nil
		}
	}
}

// iterate runs a single collect/load/report/browse pass. A load failure is
// shown to the user and ends the pass without an error.
func (s *Session) iterate(ctx context.Context) error {
	c, err := s.collector.Collect(ctx)
	if err != nil {
		return err
	}
	ds, err := s.load(ctx, s.catalog, c)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Failed to load trips.", "criteria", c.String(), "error", err)
		s.reporter.Error(err)
		return nil
	}

	s.reporter.All(ctx, ds)
	return browse.Browse(ctx, s.collector, s.reporter, ds)
}
