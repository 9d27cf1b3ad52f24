package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/jscompat/internal/helpers"
)

// Case is one conformance fixture.
type Case struct {
	// Name uniquely identifies the case and names its golden file.
	Name string `yaml:"name"`

	// Description explains what the case validates.
	Description string `yaml:"description"`

	// Helpers selects the helper injection mode. Empty means inline.
	Helpers helpers.Mode `yaml:"helpers,omitempty"`

	// Input is the JavaScript source to transform.
	Input string `yaml:"input"`

	// Expect is the exact expected output.
	Expect string `yaml:"expect"`

	// Path is the file the case was loaded from, if any.
	Path string `yaml:"-"`
}

// LoadCase reads and validates a case YAML file.
// Unknown fields are rejected so typos ("expected:") fail loudly.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}

	var c Case
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	if err := validateCase(&c); err != nil {
		return nil, fmt.Errorf("invalid case %s: %w", path, err)
	}
	c.Path = path
	return &c, nil
}

// LoadDir loads every *.yaml case in dir, sorted by file name. Case names
// must be unique.
func LoadDir(dir string) ([]*Case, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no cases found in %s", dir)
	}
	sort.Strings(paths)

	cases := make([]*Case, 0, len(paths))
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		c, err := LoadCase(path)
		if err != nil {
			return nil, err
		}
		if prev, ok := seen[c.Name]; ok {
			return nil, fmt.Errorf("duplicate case name %q in %s and %s", c.Name, prev, path)
		}
		seen[c.Name] = path
		cases = append(cases, c)
	}
	return cases, nil
}

func validateCase(c *Case) error {
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Description == "" {
		return fmt.Errorf("description is required")
	}
	if c.Input == "" {
		return fmt.Errorf("input is required")
	}
	if c.Expect == "" {
		return fmt.Errorf("expect is required")
	}
	switch c.Helpers {
	case "", helpers.ModeInline, helpers.ModeImport:
	default:
		return fmt.Errorf("helpers must be %q or %q, got %q",
			helpers.ModeInline, helpers.ModeImport, c.Helpers)
	}
	return nil
}
