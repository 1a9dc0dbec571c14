package mathresolver

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ============================================================
// Catalog configuration (YAML)
// ============================================================

type catalogFile struct {
	Operations []CatalogEntry `yaml:"operations"`
}

// ParseCatalog reads a complete operator table:
//
//	operations:
//	  - tokens: ["+"]
//	    category: plus
//	    display: "+"
//	    priority: 0
//
// Tokens missing from the table render as generic function calls.
func ParseCatalog(data []byte) (*Catalog, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f catalogFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Operations) == 0 {
		return nil, fmt.Errorf("parse catalog: no operations")
	}
	return NewCatalog(f.Operations)
}

// LoadCatalog reads a catalog file from disk.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return ParseCatalog(data)
}

// MarshalYAML writes the catalog in the format ParseCatalog reads.
func (c *Catalog) MarshalYAML() (interface{}, error) {
	return catalogFile{Operations: c.Entries()}, nil
}

// DefaultCatalogYAML returns the built-in table as YAML.
func DefaultCatalogYAML() string {
	b, err := yaml.Marshal(defaultCatalog)
	if err != nil {
		return ""
	}
	return string(b)
}
