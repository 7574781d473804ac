package report

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/stats"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// Section titles.
const (
	TitleTimes     = "Calculating The Most Frequent Times of Travel..."
	TitleStations  = "Calculating The Most Popular Stations and Trip..."
	TitleDurations = "Calculating Trip Duration..."
	TitleUsers     = "Calculating User Stats..."
)

// MsgNoData is printed instead of a section body when the filters matched nothing.
const MsgNoData = "No data for the selected filters."

// All prints the four statistics sections in order.
func (p *Printer) All(ctx context.Context, ds *trip.Dataset) {
	p.Times(ctx, ds)
	p.Stations(ctx, ds)
	p.Durations(ctx, ds)
	p.Users(ctx, ds)
}

// Times prints the most frequent month, weekday and start hour.
func (p *Printer) Times(ctx context.Context, ds *trip.Dataset) {
	p.section(ctx, TitleTimes, func() error {
		s, err := stats.Times(ds)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "The most popular month is %s (%s).\n", s.Month.Value, trips(s.Month.Count))
		fmt.Fprintf(p.out, "The most popular day is %s (%s).\n", s.Weekday.Value, trips(s.Weekday.Count))
		fmt.Fprintf(p.out, "The most popular start hour is %d (%s).\n", s.Hour.Value, trips(s.Hour.Count))
		return nil
	})
}

// Stations prints the most used stations and station pair.
func (p *Printer) Stations(ctx context.Context, ds *trip.Dataset) {
	p.section(ctx, TitleStations, func() error {
		s, err := stats.Stations(ds)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "The most commonly used start station is %s (%s).\n", s.Start.Value, trips(s.Start.Count))
		fmt.Fprintf(p.out, "The most commonly used end station is %s (%s).\n", s.End.Value, trips(s.End.Count))
		fmt.Fprintf(p.out, "The most popular start-end station pair is: %s (%s).\n", s.Pair.Value, trips(s.Pair.Count))
		return nil
	})
}

// Durations prints the total and mean travel time.
func (p *Printer) Durations(ctx context.Context, ds *trip.Dataset) {
	p.section(ctx, TitleDurations, func() error {
		s, err := stats.Durations(ds)
		if err != nil {
			return err
		}
		fmt.Fprintf(p.out, "The total travel time is %s seconds (%s).\n",
			strconv.FormatFloat(s.TotalSeconds, 'f', -1, 64), s.Total().Round(time.Second))
		fmt.Fprintf(p.out, "The mean travel time is %.2f seconds (%s).\n",
			s.MeanSeconds, s.Mean().Round(time.Second))
		return nil
	})
}

// Users prints user type counts plus the gender and birth year sections
// the dataset supports.
func (p *Printer) Users(ctx context.Context, ds *trip.Dataset) {
	p.section(ctx, TitleUsers, func() error {
		s, err := stats.Users(ds)
		if err != nil {
			return err
		}

		fmt.Fprintln(p.out, "Count of bikeshare use by user type:")
		p.counts(s.UserTypes)

		switch s.Gender.Status {
		case stats.Available:
			fmt.Fprintln(p.out, "\nCount of bikeshare use by user-specified gender:")
			p.counts(s.Gender.Counts)
		case stats.Unavailable:
			fmt.Fprintln(p.out, "\nNo gender data available.")
		case stats.NoData:
			fmt.Fprintln(p.out, "\nNo gender data for the selected filters.")
		}

		switch s.BirthYear.Status {
		case stats.Available:
			fmt.Fprintf(p.out, "\nThe earliest year of birth is %d. The most recent year of birth is %d. The most common year of birth is %d.\n",
				s.BirthYear.Earliest, s.BirthYear.MostRecent, s.BirthYear.MostCommon.Value)
		case stats.Unavailable:
			fmt.Fprintln(p.out, "\nNo birth year data available.")
		case stats.NoData:
			fmt.Fprintln(p.out, "\nNo birth year data for the selected filters.")
		}
		return nil
	})
}

// section prints the heading, runs body and closes with timing and a rule.
// An empty dataset is reported in place; other errors are printed as errors.
func (p *Printer) section(ctx context.Context, title string, body func() error) {
	logger := ctxlog.FromContext(ctx)

	p.Heading(title)
	start := p.now()
	err := body()
	elapsed := p.now().Sub(start)

	switch {
	case errors.Is(err, stats.ErrEmptyDataset):
		p.Note(MsgNoData)
	case err != nil:
		logger.Error("Report section failed.", "section", title, "error", err)
		p.Error(err)
	}
	logger.Debug("Report section printed.", "section", title, "elapsed", elapsed)

	fmt.Fprintf(p.out, "\nThis took %.4f seconds.\n", elapsed.Seconds())
	p.Separator()
}

func (p *Printer) counts(counts []stats.Count[string]) {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "  %s\t%d\n", c.Value, c.Count)
	}
	tw.Flush()
}

func trips(n int) string {
	if n == 1 {
		return "1 trip"
	}
	return fmt.Sprintf("%d trips", n)
}
