package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxUploadBytes caps upload payloads before any parsing happens.
const MaxUploadBytes = 10 << 20

// FileExtension returns the lowercased extension after the last dot,
// without the dot. Empty when the name has no dot.
func FileExtension(name string) string {
	name = strings.ToLower(name)
	i := strings.LastIndex(name, ".")
	if i < 0 {
		return ""
	}
	return name[i+1:]
}

// AllowedExtension reports whether ext is an accepted upload format.
func AllowedExtension(ext string) bool {
	switch ext {
	case "csv", "xlsx", "xls":
		return true
	}
	return false
}

// ParseFile turns file bytes into ordered rows keyed by the header row,
// plus the header strings in file column order. Blank cells come back
// as empty strings, never absent keys. A file with no data rows yields
// an empty slice, not an error.
func ParseFile(data []byte, ext string) ([]RawRow, []string, error) {
	if ext == "csv" {
		return parseCSV(data)
	}
	return parseWorkbook(data)
}

func parseCSV(data []byte) ([]RawRow, []string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	r := csv.NewReader(bytes.NewReader(data))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read csv: %w", err)
		}
		records = append(records, rec)
	}
	return shapeRows(records), headerRow(records), nil
}

func parseWorkbook(data []byte) ([]RawRow, []string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	return shapeRows(records), headerRow(records), nil
}

// headerRow trims the first record's cells; a blank header in column j
// becomes col_j so the cell is still addressable.
func headerRow(records [][]string) []string {
	if len(records) == 0 {
		return nil
	}
	headers := make([]string, len(records[0]))
	for j, h := range records[0] {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("col_%d", j)
		}
		headers[j] = h
	}
	return headers
}

func shapeRows(records [][]string) []RawRow {
	if len(records) < 2 {
		return nil
	}
	headers := headerRow(records)
	rows := make([]RawRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(RawRow, len(headers))
		for j, h := range headers {
			if j < len(rec) {
				row[h] = rec[j]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
