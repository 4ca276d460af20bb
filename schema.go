package colfmt

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Schema is the serialized column declaration for a data source:
//
//	columns:
//	  - name: account
//	    type: string
//	  - name: balance
//	    type: amount
type Schema struct {
	Columns []ColumnDecl `yaml:"columns"`
}

// ColumnDecl declares one column by name and type.
type ColumnDecl struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// ParseSchema parses a YAML schema document into columns. Every declared
// type must name a known kind.
func ParseSchema(data []byte) ([]Column, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	if len(s.Columns) == 0 {
		return nil, fmt.Errorf("invalid schema: no columns declared")
	}
	cols := make([]Column, len(s.Columns))
	for i, decl := range s.Columns {
		if decl.Name == "" {
			return nil, fmt.Errorf("invalid schema: column %d has no name", i)
		}
		kind, err := ParseKind(decl.Type)
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", decl.Name, err)
		}
		cols[i] = Column{Name: decl.Name, Kind: kind}
	}
	return cols, nil
}
