package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// utf8BOM lets common spreadsheet tools recognize the encoding.
const utf8BOM = "\xEF\xBB\xBF"

// ExportResponsesCSV renders entries into the questionnaire CSV: a header of
// human-readable column labels (submission date first), then one row per
// entry in the fixed field order. Missing fields render as empty cells.
func ExportResponsesCSV(entries []map[string]any) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteString(utf8BOM)
	w := csv.NewWriter(buf)
	w.UseCRLF = true

	header := make([]string, 0, 1+len(FieldKeys))
	header = append(header, "Date de soumission")
	for _, key := range FieldKeys {
		header = append(header, FieldLabel(key))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, entry := range entries {
		rec := make([]string, 0, len(header))
		rec = append(rec, submittedAt(entry))
		for _, key := range FieldKeys {
			rec = append(rec, fieldString(entry, key))
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func fieldString(entry map[string]any, key string) string {
	switch v := entry[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		// Non-string answers (numbers, booleans) still export readably.
		return fmt.Sprint(v)
	}
}
