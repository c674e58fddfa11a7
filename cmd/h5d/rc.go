package main

import (
	"fmt"
	"os"

	"github.com/h5dump-format/h5dump/debug"
	"github.com/h5dump-format/h5dump/format"
	"github.com/h5dump-format/h5dump/parse"
	"github.com/h5dump-format/h5dump/token"

	"github.com/goccy/go-yaml"
)

// RCEnv names the environment variable holding the default settings file.
const RCEnv = "H5D_RC"

// RC holds settings read from a YAML file.  Command line options take
// precedence.
//
//	format: yaml
//	duplicates: last
//	color: false
//	patterns:
//	  DATASET: '^\s*DATASET "([^"]*)"'
type RC struct {
	Format     *format.Format         `yaml:"format"`
	Duplicates *parse.DuplicatePolicy `yaml:"duplicates"`
	Color      *bool                  `yaml:"color"`
	// Patterns maps a kind to a name extraction expression with one
	// capture group.
	Patterns map[string]string `yaml:"patterns"`

	patterns map[token.Kind]*token.Pattern
}

func (cfg *MainConfig) loadRC() error {
	path := cfg.RC
	if path == "" {
		path = os.Getenv(RCEnv)
	}
	if path == "" {
		return nil
	}
	rc, err := ReadRC(path)
	if err != nil {
		return err
	}
	cfg.rc = rc
	return nil
}

// ReadRC reads and validates the settings file at path.
func ReadRC(path string) (*RC, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read settings: %w", err)
	}
	return decodeRC(path, d)
}

func decodeRC(path string, d []byte) (*RC, error) {
	rc := &RC{}
	if err := yaml.Unmarshal(d, rc); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	rc.patterns = make(map[token.Kind]*token.Pattern, len(rc.Patterns))
	for ks, expr := range rc.Patterns {
		k, err := token.ParseKind(ks)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		p, err := token.NewPattern(k, expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		rc.patterns[k] = p
	}
	if debug.Source() {
		debug.Logf("settings from %s: %v\n", path, rc)
	}
	return rc, nil
}
