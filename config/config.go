// Package config defines the build-run configuration for the knowledge
// graph construction engine.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/TTa77/PheKnowLator/errors"
)

// Config represents a complete knowledge graph build configuration.
//
// The namespace table is explicit configuration rather than ambient state:
// the node classifier prepends these prefixes when constructing class and
// entity URIs, keyed by the short namespace names used in edge data
// (e.g. "gene" -> "https://www.ncbi.nlm.nih.gov/gene/").
type Config struct {
	// Ontologies lists the source ontology file paths to merge.
	Ontologies []string `json:"ontologies" yaml:"ontologies"`

	// Namespaces maps namespace keys to URI prefixes for node
	// classification.
	Namespaces map[string]string `json:"namespaces" yaml:"namespaces"`

	// OWLToolsPath locates the external merge/format/reason binary.
	OWLToolsPath string `json:"owltools_path" yaml:"owltools_path"`

	// WriteLocation is the directory all persisted artifacts go to.
	WriteLocation string `json:"write_location" yaml:"write_location"`

	// MergedName is the filename of the merged ontology produced by the
	// external tool.
	MergedName string `json:"merged_name" yaml:"merged_name"`

	// LoaderWorkers bounds the number of ontology files parsed
	// concurrently. Zero selects the pool default.
	LoaderWorkers int `json:"loader_workers" yaml:"loader_workers"`

	// MapPredicates controls whether the integer mapper encodes the
	// predicate position as well as subject and object.
	MapPredicates bool `json:"map_predicates" yaml:"map_predicates"`
}

// Default returns a configuration with defaults applied for every field
// that has a sensible one.
func Default() *Config {
	return &Config{
		Namespaces:    make(map[string]string),
		MergedName:    "MergedOntologies.owl",
		LoaderWorkers: 4,
		MapPredicates: true,
	}
}

// Load reads a configuration file, choosing JSON or YAML by extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapNotFound(
				fmt.Errorf("%w: %s", errors.ErrFileNotFound, path),
				"config", "Load", "read config file")
		}
		return nil, errors.WrapIO(err, "config", "Load", "read config file")
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		err = json.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, errors.WrapInvalid(err, "config", "Load", "parse config file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for use by a build run.
func (c *Config) Validate() error {
	if len(c.Ontologies) == 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: ontologies", errors.ErrMissingConfig),
			"config", "Validate", "check ontology list")
	}
	if c.WriteLocation == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: write_location", errors.ErrMissingConfig),
			"config", "Validate", "check write location")
	}
	if c.MergedName == "" {
		return errors.WrapInvalid(
			fmt.Errorf("%w: merged_name", errors.ErrMissingConfig),
			"config", "Validate", "check merged filename")
	}
	if c.LoaderWorkers < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("%w: loader_workers must be non-negative", errors.ErrInvalidConfig),
			"config", "Validate", "check loader workers")
	}
	for key, prefix := range c.Namespaces {
		if key == "" || prefix == "" {
			return errors.WrapInvalid(
				fmt.Errorf("%w: empty namespace entry", errors.ErrInvalidConfig),
				"config", "Validate", "check namespace table")
		}
	}
	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	if c == nil {
		return Default()
	}

	// JSON round-trip for a deep copy, matching the struct's tags.
	data, err := json.Marshal(c)
	if err != nil {
		copied := *c
		return &copied
	}
	var clone Config
	if err := json.Unmarshal(data, &clone); err != nil {
		copied := *c
		return &copied
	}
	return &clone
}
