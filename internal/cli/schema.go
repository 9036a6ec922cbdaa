package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/bjaus/datatable"
)

// schema is the optional TOML file describing how to load an input file.
//
//	chart = "bar"
//	encoding = "json"
//	sheet = "Sales"
//
//	[[column]]
//	type = "string"
//	label = "Month"
//
//	[[column]]
//	type = "number"
type schema struct {
	Chart    string         `toml:"chart"`
	Encoding string         `toml:"encoding"`
	Sheet    string         `toml:"sheet"`
	Columns  []schemaColumn `toml:"column"`
}

type schemaColumn struct {
	Type  string `toml:"type"`
	Label string `toml:"label"`
}

func loadSchema(path string) (schema, error) {
	var s schema
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return schema{}, fmt.Errorf("load schema %s: %w", path, err)
	}
	return s, nil
}

// columns returns the declared types and label overrides.
func (s schema) columns() ([]datatable.ColumnType, []string, error) {
	types := make([]datatable.ColumnType, len(s.Columns))
	labels := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		if c.Type != "" {
			typ, err := datatable.ParseColumnType(c.Type)
			if err != nil {
				return nil, nil, fmt.Errorf("column %d: %w", i+1, err)
			}
			types[i] = typ
		}
		labels[i] = c.Label
	}
	return types, labels, nil
}
