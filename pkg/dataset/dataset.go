// Package dataset reads and writes the flat CSV files that connect the
// harvester to the renderer.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Record is one raw CSV row, fields untrimmed and unparsed.
type Record struct {
	Kanji     string
	Meaning   string
	Readings  string
	Compounds string
}

// Header is the required column set, in the order Save writes it.
var Header = []string{"kanji", "meaning", "readings", "compounds"}

// Load reads a kanji CSV file. The header row is required and columns are
// matched by name, so column order does not matter. Rows too short to cover
// every named column are skipped rather than failing the whole file.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset %s: missing header row", path)
	}

	idx := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range Header {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("dataset %s: missing column %q", path, name)
		}
	}

	need := 0
	for _, name := range Header {
		if idx[name] > need {
			need = idx[name]
		}
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) <= need {
			continue
		}
		records = append(records, Record{
			Kanji:     row[idx["kanji"]],
			Meaning:   row[idx["meaning"]],
			Readings:  row[idx["readings"]],
			Compounds: row[idx["compounds"]],
		})
	}
	return records, nil
}

// Save writes records with the standard header. Used by the harvester.
func Save(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dataset: %w", err)
	}

	w := csv.NewWriter(f)
	w.Write(Header)
	for _, rec := range records {
		w.Write([]string{rec.Kanji, rec.Meaning, rec.Readings, rec.Compounds})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write dataset %s: %w", path, err)
	}
	return f.Close()
}
