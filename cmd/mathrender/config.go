package main

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	mathresolver "github.com/njchilds90/mathresolver"
)

// config holds the CLI settings. The same keys are accepted in the file
// passed with -config:
//
//	style: greek
//	domain: set
//	catalog: ops.yaml
//	measure: face
//	spans: true
type config struct {
	Style   string `yaml:"style"`
	Domain  string `yaml:"domain"`
	Catalog string `yaml:"catalog"`
	Measure string `yaml:"measure"`
	Spans   bool   `yaml:"spans"`
}

func defaultConfig() config {
	return config{Style: "default", Domain: "algebra", Measure: "cell"}
}

func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("load config: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (config, error) {
	cfg := defaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// merge returns c with the fields of flags whose flag names are in set.
func (c config) merge(flags config, set map[string]bool) config {
	if set["style"] {
		c.Style = flags.Style
	}
	if set["domain"] {
		c.Domain = flags.Domain
	}
	if set["catalog"] {
		c.Catalog = flags.Catalog
	}
	if set["measure"] {
		c.Measure = flags.Measure
	}
	if set["spans"] {
		c.Spans = flags.Spans
	}
	return c
}

func (c config) resolver(logger *log.Logger) (*mathresolver.Resolver, error) {
	style, err := mathresolver.ParseStyle(c.Style)
	if err != nil {
		return nil, err
	}
	domain, err := mathresolver.ParseDomain(c.Domain)
	if err != nil {
		return nil, err
	}
	opts := []mathresolver.Option{
		mathresolver.WithStyle(style),
		mathresolver.WithDomain(domain),
		mathresolver.WithLogger(logger),
	}
	switch c.Measure {
	case "", "cell":
		opts = append(opts, mathresolver.WithMeasurer(mathresolver.CellMeasurer{}))
	case "face":
		opts = append(opts, mathresolver.WithMeasurer(mathresolver.NewFaceMeasurer(nil)))
	default:
		return nil, fmt.Errorf("unknown measure %q", c.Measure)
	}
	if c.Catalog != "" {
		cat, err := mathresolver.LoadCatalog(c.Catalog)
		if err != nil {
			return nil, err
		}
		opts = append(opts, mathresolver.WithCatalog(cat))
	}
	return mathresolver.NewResolver(opts...), nil
}

func catalogYAML(c *mathresolver.Catalog) (string, error) {
	b, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
