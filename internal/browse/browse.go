// Package browse pages through the raw rows of a filtered dataset on demand.
package browse

import (
	"context"

	"github.com/specialistvlad/bikeshare/internal/ctxlog"
	"github.com/specialistvlad/bikeshare/internal/trip"
)

// PageSize is the number of rows shown per continuation.
const PageSize = 5

// Prompts used by Browse.
const (
	AskFirst = "Would you like to see the raw data? y/n "
	AskMore  = "See 5 more rows? y/n "
)

// Messages printed by Browse.
const (
	MsgExhausted = "No more rows."
	MsgDone      = "Okay."
)

// Pager hands out consecutive pages of a dataset starting at row 0.
type Pager struct {
	ds     *trip.Dataset
	offset int
}

// NewPager creates a pager positioned at the first row of ds.
func NewPager(ds *trip.Dataset) *Pager {
	return &Pager{ds: ds}
}

// Offset is the dataset index of the next row Next will return.
func (p *Pager) Offset() int { return p.offset }

// Remaining is the number of rows not yet handed out.
func (p *Pager) Remaining() int { return max(p.ds.Len()-p.offset, 0) }

// Next returns the next page and advances by PageSize. Past the end it
// returns an empty page.
func (p *Pager) Next() []trip.Record {
	page := p.ds.Slice(p.offset, p.offset+PageSize)
	p.offset += PageSize
	return page
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, question string) (bool, error)
}

// Renderer prints pages and status lines.
type Renderer interface {
	Rows(offset int, rows []trip.Record, fields trip.FieldSet)
	Message(msg string)
	Separator()
}

// Browse offers the raw rows of ds one page at a time. It stops when the user
// declines or every row has been shown, and returns only input errors.
func Browse(ctx context.Context, c Confirmer, r Renderer, ds *trip.Dataset) error {
	logger := ctxlog.FromContext(ctx)
	pager := NewPager(ds)

	question := AskFirst
	for {
		ok, err := c.Confirm(ctx, question)
		if err != nil {
			return err
		}
		if !ok {
			r.Message(MsgDone)
			break
		}

		offset := pager.Offset()
		page := pager.Next()
		if len(page) == 0 {
			r.Message(MsgExhausted)
			break
		}
		r.Rows(offset, page, ds.Fields())
		logger.Debug("Raw rows shown.", "offset", offset, "rows", len(page))

		if pager.Remaining() == 0 {
			r.Message(MsgExhausted)
			break
		}
		question = AskMore
	}

	r.Separator()
	return nil
}
