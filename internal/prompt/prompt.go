// Package prompt collects the user's city, month and day selection over an
// interactive text stream and answers yes/no questions.
//
// Every question loops until the answer is acceptable; invalid input is
// never fatal. The only error a Prompter returns is the input stream ending
// (io.EOF) or failing.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/bikeshare/internal/catalog"
	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/filter"
	"github.com/specialistvlad/bikeshare/internal/report"
)

// Greeting opens every selection round.
const Greeting = "Hello! Let's explore some US bikeshare data!"

// Prompter reads answers line by line from in and writes questions to out.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	cities *catalog.Catalog
}

// New creates a Prompter that accepts the cities in cat.
func New(in io.Reader, out io.Writer, cat *catalog.Catalog) *Prompter {
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		cities: cat,
	}
}

// question describes one validated prompt loop.
type question struct {
	field   string
	ask     string
	retry   func(rejected string) string
	accept  func(answer string) bool
	confirm func(answer string) string
}

// Collect asks for city, month and day and returns the validated selection.
func (p *Prompter) Collect(ctx context.Context) (filter.Criteria, error) {
	fmt.Fprintln(p.out, Greeting)

	city, err := p.City(ctx)
	if err != nil {
		return filter.Criteria{}, err
	}
	month, err := p.Month(ctx)
	if err != nil {
		return filter.Criteria{}, err
	}
	day, err := p.Day(ctx)
	if err != nil {
		return filter.Criteria{}, err
	}
	fmt.Fprintln(p.out, report.Rule())

	c, err := filter.New(city, month, day)
	if err != nil {
		return filter.Criteria{}, fmt.Errorf("collected selection is invalid: %w", err)
	}
	return c, nil
}

// City asks until the answer names a catalog city.
func (p *Prompter) City(ctx context.Context) (string, error) {
	return p.askUntil(ctx, question{
		field: "city",
		ask:   fmt.Sprintf("Please enter the city (%s): ", p.cities),
		retry: func(rejected string) string {
			return fmt.Sprintf("%s isn't on the list. Make sure you type the city exactly as shown above: ", rejected)
		},
		accept:  p.cities.Has,
		confirm: func(answer string) string { return "Got it: " + answer },
	})
}

// Month asks until the answer is january..june or "all".
func (p *Prompter) Month(ctx context.Context) (string, error) {
	return p.askUntil(ctx, question{
		field: "month",
		ask:   `Now pick a month (january-june), or enter "all" to apply no month filter: `,
		retry: func(string) string {
			return "Please try again. Please type the month carefully using only letters: "
		},
		accept:  filter.ValidMonth,
		confirm: func(answer string) string { return "Okay, month is: " + answer },
	})
}

// Day asks until the answer is a weekday name or "all".
func (p *Prompter) Day(ctx context.Context) (string, error) {
	return p.askUntil(ctx, question{
		field: "day",
		ask:   `Finally, pick a day (eg monday) or "all": `,
		retry: func(string) string {
			return "I'm not sure that's a day. Make sure you type it in full: "
		},
		accept:  filter.ValidDay,
		confirm: func(answer string) string { return "Day is: " + answer },
	})
}

// Confirm asks a yes/no question. "y" and "yes" in any case mean yes;
// anything else means no.
func (p *Prompter) Confirm(ctx context.Context, q string) (bool, error) {
	answer, err := p.ask(q)
	if err != nil {
		return false, err
	}
	yes := answer == "y" || answer == "yes"
	ctxlog.FromContext(ctx).Debug("Confirmation answered.", "question", strings.TrimSpace(q), "yes", yes)
	return yes, nil
}

func (p *Prompter) askUntil(ctx context.Context, q question) (string, error) {
	logger := ctxlog.FromContext(ctx).With("field", q.field)

	answer, err := p.ask(q.ask)
	for err == nil && !q.accept(answer) {
		logger.Debug("Rejected input.", "value", answer)
		answer, err = p.ask(q.retry(answer))
	}
	if err != nil {
		return "", err
	}

	fmt.Fprintln(p.out, q.confirm(answer))
	logger.Debug("Accepted input.", "value", answer)
	return answer, nil
}

// ask prints q and returns the next line normalized by filter.Normalize.
// Lines of any length are accepted. A final line without a newline is
// still returned; io.EOF is reported only once nothing is left.
func (p *Prompter) ask(q string) (string, error) {
	fmt.Fprint(p.out, q)
	line, err := p.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
		return "", io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return filter.Normalize(line), nil
}
