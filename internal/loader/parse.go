package loader

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// fieldCount is the number of columns in the Motor Vehicle Collisions
// export. Rows with fewer columns are skipped.
const fieldCount = 29

const (
	dateLayout = "01/02/2006"
	timeLayout = "15:04"
)

// splitLine splits one TSV line, preserving trailing empty fields and
// trimming surrounding whitespace from each.
func splitLine(line string) []string {
	fields := strings.Split(line, "\t")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// parseRecord maps the export's 29 source columns onto the crash_data
// insert order. The source puts the collision id at column 24; the table
// keys on it, so a row without a parseable id is rejected. Bad dates,
// times and coordinates degrade to NULL; bad counts degrade to zero.
func parseRecord(fields []string) ([]any, error) {
	if len(fields) < fieldCount {
		return nil, fmt.Errorf("row has %d columns, want %d", len(fields), fieldCount)
	}

	id := parseLong(fields[23])
	if id == nil {
		return nil, fmt.Errorf("row has no collision id: %q", fields[23])
	}

	rec := make([]any, 0, fieldCount)
	rec = append(rec,
		id,
		parseDate(fields[0]),
		parseTime(fields[1]),
		nullIfEmpty(fields[2]), // borough
		nullIfEmpty(fields[3]), // zip_code
		parseFloat(fields[4]),  // latitude
		parseFloat(fields[5]),  // longitude
		nullIfEmpty(fields[6]),
		nullIfEmpty(fields[7]),
		nullIfEmpty(fields[8]),
		nullIfEmpty(fields[9]),
	)
	for i := 10; i <= 17; i++ { // injury and death counts
		rec = append(rec, parseCount(fields[i]))
	}
	for i := 18; i <= 22; i++ { // contributing factors
		rec = append(rec, nullIfEmpty(fields[i]))
	}
	for i := 24; i <= 28; i++ { // vehicle types
		rec = append(rec, nullIfEmpty(fields[i]))
	}
	return rec, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func parseDate(s string) any {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return t
}

// parseTime normalizes "H:MM" / "HH:MM" to "HH:MM:SS" text.
func parseTime(s string) any {
	if s == "" {
		return nil
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return nil
	}
	return t.Format("15:04:05")
}

func parseFloat(s string) any {
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return f
}

func parseLong(s string) any {
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return n
}

func parseCount(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
