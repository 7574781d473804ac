package testutil

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// ChicagoCSV is a seven-row trip file with every optional column. The first,
// unnamed column mirrors the index column of the published files.
//
// Expected aggregates over all rows: month March, weekday Monday, hour 8,
// start "A St", end "C St", pair "A St - B St" (tied with "A St - C St"),
// total 3831s, 5 Subscriber / 2 Customer, 4 Male / 2 Female, birth years
// 1980..1992 with mode 1990. The March subset (rows 2-5) totals 2850s.
const ChicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1,2017-01-02 08:05:00,2017-01-02 08:15:00,600,A St,B St,Subscriber,Male,1980.0
2,2017-03-01 08:15:00,2017-03-01 08:20:00,300,A St,C St,Subscriber,Female,1990.0
3,2017-03-01 17:30:00,2017-03-01 17:45:00,900,B St,C St,Customer,,
4,2017-03-06 08:45:00,2017-03-06 09:05:00,1200,A St,C St,Subscriber,Male,1990.0
5,2017-03-11 12:00:00,2017-03-11 12:07:30,450,C St,A St,Customer,Female,1985.0
6,2017-05-01 08:00:00,2017-05-01 08:01:00,60,B St,A St,Subscriber,Male,1990.0
7,2017-06-23 15:09:32,2017-06-23 15:14:53,321,A St,B St,Subscriber,Male,1992.0
`

// NewYorkCityCSV is a three-row trip file with every optional column.
const NewYorkCityCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
5688089,2017-06-11 14:55:05,2017-06-11 15:08:21,795,Suffolk St & Stanton St,W Broadway & Spring St,Subscriber,Male,1998.0
4096714,2017-05-11 15:30:11,2017-05-11 15:41:43,692,Lexington Ave & E 63 St,1 Ave & E 78 St,Subscriber,Male,1981.0
2173887,2017-03-29 13:26:26,2017-03-29 13:48:31,1325,1 Pl & Clinton St,Henry St & Degraw St,Customer,,
`

// WashingtonCSV is a three-row trip file without Gender and Birth Year.
const WashingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:42,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
1330037,2017-03-30 17:49:29,2017-03-30 18:00:06,637.251,Park Rd & Holmead Pl NW,14th & Upshur St NW,Customer
`

// WriteFiles writes each name -> content pair under a fresh temporary
// directory and returns that directory. Names may contain subdirectories.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0o755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0o644))
	}
	return dir
}

// WriteCityFiles writes the three fixture cities under their published file
// names and returns the data directory.
func WriteCityFiles(t *testing.T) string {
	t.Helper()
	return WriteFiles(t, map[string]string{
		"chicago.csv":       ChicagoCSV,
		"new_york_city.csv": NewYorkCityCSV,
		"washington.csv":    WashingtonCSV,
	})
}

// Answers returns a reader that yields each answer as one line of input.
func Answers(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}
