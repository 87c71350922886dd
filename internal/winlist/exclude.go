package winlist

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Rule excludes windows by exact field match. Each set field matches on its
// own; a window hitting either field of a rule is excluded.
type Rule struct {
	Title string `yaml:"title"`
	Exe   string `yaml:"exe"`
}

// Excluder filters enumerated windows against a reloadable rule list.
type Excluder struct {
	path  string
	rules []Rule
}

// NewExcluder loads rules from the YAML file at path. An empty path or a
// missing file means no exclusions.
func NewExcluder(path string) (*Excluder, error) {
	e := &Excluder{path: path}
	if err := e.Reload(); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload re-reads the rule file, replacing the active rules.
func (e *Excluder) Reload() error {
	e.rules = nil
	if e.path == "" {
		return nil
	}
	data, err := os.ReadFile(e.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read exclusions: %w", err)
	}
	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return fmt.Errorf("parse exclusions: %w", err)
	}
	e.rules = rules
	return nil
}

// Excluded reports whether the window matches any rule. A nil Excluder
// excludes nothing.
func (e *Excluder) Excluded(w Window) bool {
	if e == nil {
		return false
	}
	for _, r := range e.rules {
		if r.Title != "" && r.Title == w.Title {
			return true
		}
		if r.Exe != "" && r.Exe == w.Exe {
			return true
		}
	}
	return false
}
