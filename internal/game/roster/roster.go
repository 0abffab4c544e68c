// Package roster loads YAML roster files describing the combatants of a game
// and seeds sessions from them.
package roster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/duel/internal/game/session"
)

// Member is one combatant entry in a roster file.
type Member struct {
	Name string `yaml:"name"`
	// Health is the starting health; nil starts the member at full health.
	Health *int `yaml:"health,omitempty"`
}

// Roster is a named list of combatants.
//
// Precondition: Name must be non-empty and Members must hold at least two
// distinct, non-blank names after loading.
type Roster struct {
	Name    string   `yaml:"name"`
	Members []Member `yaml:"entities"`
}

// Validate checks the roster invariants.
//
// Postcondition: Returns nil if valid, or an error describing every violation.
func (r *Roster) Validate() error {
	var errs []string
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "roster name must not be empty")
	}
	if len(r.Members) < 2 {
		errs = append(errs, fmt.Sprintf("roster needs at least 2 entities, got %d", len(r.Members)))
	}
	seen := make(map[string]bool, len(r.Members))
	for i, m := range r.Members {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, fmt.Sprintf("entity %d has an empty name", i))
			continue
		}
		if seen[m.Name] {
			errs = append(errs, fmt.Sprintf("entity name %q appears more than once", m.Name))
		}
		seen[m.Name] = true
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

// Seed adds every member to s in roster order.
//
// Precondition: s must be non-nil.
// Postcondition: All members are on the roster, or the first failure is returned.
func (r *Roster) Seed(s *session.Session) error {
	for _, m := range r.Members {
		var err error
		if m.Health != nil {
			_, err = s.AddEntityWithHealth(m.Name, *m.Health)
		} else {
			_, err = s.AddEntity(m.Name)
		}
		if err != nil {
			return fmt.Errorf("seeding roster %q: %w", r.Name, err)
		}
	}
	return nil
}

// Parse decodes and validates a roster document.
//
// Postcondition: Returns a valid roster or a non-nil error.
func Parse(data []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid roster %q: %w", r.Name, err)
	}
	return &r, nil
}

// Load reads and parses the roster file at path.
//
// Precondition: path must be a readable YAML file.
// Postcondition: Returns a valid roster or a non-nil error.
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// LoadDir reads all .yaml and .yml files in dir as rosters.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed rosters (may be empty) or a non-nil error.
func LoadDir(dir string) ([]*Roster, error) {
	files, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	rosters := make([]*Roster, 0, len(files))
	for _, path := range files {
		r, err := Load(path)
		if err != nil {
			return nil, err
		}
		rosters = append(rosters, r)
	}
	return rosters, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	return paths, nil
}
