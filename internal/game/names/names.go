// Package names loads NPC name lists and picks random names from them.
package names

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gmkit/internal/game/dice"
)

var (
	// ErrFormat is returned when a name list cannot be parsed.
	ErrFormat = fmt.Errorf("name list: %w", dice.ErrFormat)
	// ErrNotEnoughNames is returned when more names are requested than the list holds.
	ErrNotEnoughNames = errors.New("not enough names")
)

// Record is one row of a name list. Attributes holds every other column.
type Record struct {
	Name       string            `yaml:"name"`
	Attributes map[string]string `yaml:"attributes,omitempty"`
}

// Load reads a name list from path. CSV files need a header row with a
// "name" column; YAML files hold a sequence of records.
//
// Precondition: path must have a .csv, .yaml or .yml extension.
// Postcondition: Returns the records in file order, or an error wrapping
// fs.ErrNotExist for a missing file or ErrFormat for malformed content.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name list: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return parseCSV(f)
	case ".yaml", ".yml":
		return parseYAML(f)
	default:
		return nil, fmt.Errorf("unsupported name list extension %q: %w", filepath.Ext(path), ErrFormat)
	}
}

func parseCSV(r io.Reader) ([]Record, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("missing header row: %w", ErrFormat)
	}
	header := rows[0]
	nameCol := -1
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), "name") {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("header has no name column: %w", ErrFormat)
	}

	records := make([]Record, 0, len(rows)-1)
	for line, row := range rows[1:] {
		name := strings.TrimSpace(row[nameCol])
		if name == "" {
			return nil, fmt.Errorf("row %d has an empty name: %w", line+2, ErrFormat)
		}
		rec := Record{Name: name}
		for i, v := range row {
			if i == nameCol {
				continue
			}
			if rec.Attributes == nil {
				rec.Attributes = make(map[string]string, len(row)-1)
			}
			rec.Attributes[strings.TrimSpace(header[i])] = v
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseYAML(r io.Reader) ([]Record, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}
	for i, rec := range records {
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("record %d has an empty name: %w", i, ErrFormat)
		}
	}
	return records, nil
}

// Pick returns n distinct records' names chosen uniformly without replacement.
//
// Precondition: src must be non-nil.
// Postcondition: len(result) == n; returns ErrNotEnoughNames when n > len(records)
// and ErrInvalidParameter when n < 0. records is never modified.
func Pick(records []Record, n int, src dice.Source) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("names: pick count must be >= 0, got %d: %w", n, dice.ErrInvalidParameter)
	}
	if n > len(records) {
		return nil, fmt.Errorf("names: cannot pick %d from %d: %w", n, len(records), ErrNotEnoughNames)
	}
	idx := make([]int, len(records))
	for i := range idx {
		idx[i] = i
	}
	// partial Fisher–Yates: the first n slots end up a uniform sample
	out := make([]string, n)
	for i := 0; i < n; i++ {
		j := i + src.Intn(len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
		out[i] = records[idx[i]].Name
	}
	return out, nil
}
