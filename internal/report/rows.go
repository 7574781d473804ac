package report

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/specialistvlad/bikeshare/internal/trip"
)

const rowTimeLayout = "2006-01-02 15:04:05"

// Rows prints a page of raw trips as a table. offset is the dataset index of
// the first row and is used for the leading row number column.
func (p *Printer) Rows(offset int, rows []trip.Record, fields trip.FieldSet) {
	tw := tabwriter.NewWriter(p.out, 0, 0, 2, ' ', 0)

	header := []string{"#", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if fields.Has(trip.FieldGender) {
		header = append(header, "Gender")
	}
	if fields.Has(trip.FieldBirthYear) {
		header = append(header, "Birth Year")
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for i, r := range rows {
		cells := []string{
			strconv.Itoa(offset + i),
			r.StartTime.Format(rowTimeLayout),
			r.EndTime.Format(rowTimeLayout),
			strconv.FormatFloat(r.DurationSeconds, 'f', -1, 64),
			r.StartStation,
			r.EndStation,
			r.UserType,
		}
		if fields.Has(trip.FieldGender) {
			cells = append(cells, r.Gender)
		}
		if fields.Has(trip.FieldBirthYear) {
			year := ""
			if r.BirthYear != 0 {
				year = strconv.Itoa(r.BirthYear)
			}
			cells = append(cells, year)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}
