package sheet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type document struct {
	Columns []Column      `yaml:"columns"`
	Rows    []documentRow `yaml:"rows"`
}

type documentRow struct {
	ID    string `yaml:"id"`
	Cells []any  `yaml:"cells"`
}

// Decode reads a YAML sheet document. A null cell (`~`) is an absent record.
func Decode(r io.Reader) (*Sheet, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidDocument, err)
	}

	rows := make([]Row, len(doc.Rows))
	for i, r := range doc.Rows {
		rows[i] = Row{ID: r.ID, Cells: Values(r.Cells...)}
	}

	s, err := New(doc.Columns, rows)
	if err != nil {
		return nil, errors.Join(ErrInvalidDocument, err)
	}
	return s, nil
}

// LoadFile decodes the YAML sheet document at path.
func LoadFile(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sheet: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
