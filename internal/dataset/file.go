package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a dataset file, picking the decoder from the extension:
// .csv, .json, or .yaml/.yml.
func Load(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return DecodeCSV(f)
	case ".json":
		return DecodeJSON(f)
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// DecodeCSV reads a header row followed by records. Short records leave
// their trailing fields empty.
func DecodeCSV(r io.Reader) (*Source, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: decode csv: %w", err)
	}
	if len(records) == 0 {
		return &Source{}, nil
	}

	src := &Source{Fields: records[0], Rows: make([]Row, 0, len(records)-1)}
	for _, rec := range records[1:] {
		row := make(Row, len(src.Fields))
		for j, name := range src.Fields {
			if j < len(rec) {
				row[name] = rec[j]
			}
		}
		src.Rows = append(src.Rows, row)
	}
	return src, nil
}

// DecodeJSON reads an array of flat objects.
func DecodeJSON(r io.Reader) (*Source, error) {
	var rows []map[string]any
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("dataset: decode json: %w", err)
	}
	return fromMaps(rows), nil
}

// DecodeYAML reads a sequence of flat mappings.
func DecodeYAML(r io.Reader) (*Source, error) {
	var rows []map[string]any
	if err := yaml.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("dataset: decode yaml: %w", err)
	}
	return fromMaps(rows), nil
}

// fromMaps normalizes decoded objects into string-valued rows with a stable
// sorted field list drawn from every row's keys.
func fromMaps(rows []map[string]any) *Source {
	seen := make(map[string]bool)
	src := &Source{Rows: make([]Row, 0, len(rows))}
	for _, m := range rows {
		row := make(Row, len(m))
		for k, v := range m {
			if !seen[k] {
				seen[k] = true
				src.Fields = append(src.Fields, k)
			}
			row[k] = fmt.Sprintf("%v", v)
		}
		src.Rows = append(src.Rows, row)
	}
	sort.Strings(src.Fields)
	return src
}
