package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// RawRow is one parsed data row keyed by the file's own header strings.
// Cells the file left blank are present as empty strings.
type RawRow map[string]string

const dateLayout = "2006-01-02"

// Layouts tried, in order, when a date cell is not already ISO.
// Covers the common spreadsheet renderings of date cells.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"01-02-06",
	"Jan 2, 2006",
	"January 2, 2006",
	"2-Jan-2006",
	"02-Jan-2006",
}

// ReadString returns the trimmed cell value under header, or nil when
// the header is unresolved, the cell is absent, or it trims to empty.
func ReadString(row RawRow, header string) *string {
	if header == "" {
		return nil
	}
	v, ok := row[header]
	if !ok {
		return nil
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// ReadNumber strips everything that is not a digit, '.' or '-' and
// parses the remainder as a float. Currency symbols and thousands
// separators are discarded on the way ("₹1,099.00" parses as 1099).
func ReadNumber(row RawRow, header string) *float64 {
	s := ReadString(row, header)
	if s == nil {
		return nil
	}
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, *s)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &n
}

// ReadInteger is the floor of ReadNumber; nil propagates.
func ReadInteger(row RawRow, header string) *int64 {
	n := ReadNumber(row, header)
	if n == nil {
		return nil
	}
	i := int64(math.Floor(*n))
	return &i
}

// ParseDate parses a cell value against the known layouts.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsISODate reports whether s is already a valid YYYY-MM-DD string.
func IsISODate(s string) bool {
	if len(s) != 10 {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Cut on a rune boundary so multi-byte text stays valid.
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
