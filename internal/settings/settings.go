// Package settings implements the user-settings store (spec §4.6, §6): a
// mapping from a fixed enumerated set of setting names to {active, value},
// loaded from an optional on-disk document and rewritten as a
// defaults-filled snapshot after every change.
//
// Grounded on the original's UserSettings.get_defaults/load_from_file/
// save_to_file in master_application.py (modify_user_settings,
// _extract_settings); the enumerated setting names themselves are not
// fixed by the original's excerpted source; this package fixes them, with
// their defaults, in the Defaults map below.
package settings

import (
	"os"

	"github.com/juju/errors"
	k8syaml "sigs.k8s.io/yaml"

	"cellmaster/pkg/logging"
)

// Entry is one user setting's current value. The on-disk snapshot is
// marshaled through sigs.k8s.io/yaml (JSON-tagged round trip via these
// `json` tags) rather than gopkg.in/yaml.v3, which internal/config uses
// for cell.yaml — SPEC_FULL.md §6 wires both libraries in, one per
// on-disk document.
type Entry struct {
	Active bool `json:"active"`
	Value  int  `json:"value"`
}

// Update is one incoming payload entry from the operator's usersettings
// command (spec §6): Value is nil when the operator omitted it, which
// coerces to -1 per spec.
type Update struct {
	Name   string
	Active bool
	Value  *int
}

// Defaults is the fixed enumerated set of setting names and their default
// values, used both to seed a fresh store and to fill in any name the
// operator's payload omits.
var Defaults = map[string]Entry{
	"stop_on_fail":       {Active: false, Value: -1},
	"retest_count":       {Active: false, Value: 0},
	"binning_strict":     {Active: true, Value: -1},
	"debug_logging":      {Active: false, Value: -1},
	"max_parallel_sites": {Active: false, Value: -1},
}

// Store holds the current settings snapshot and, if a path is configured,
// persists it on every write.
type Store struct {
	path    string
	current map[string]Entry
}

// New creates a Store. If path is non-empty, an existing document there is
// loaded; otherwise (or on load failure) the store starts from Defaults.
func New(path string) *Store {
	s := &Store{path: path, current: cloneDefaults()}
	if path == "" {
		return s
	}
	loaded, err := loadFile(path)
	if err != nil {
		logging.Warn("settings", "falling back to defaults: %v", err)
		return s
	}
	s.current = loaded
	return s
}

func cloneDefaults() map[string]Entry {
	m := make(map[string]Entry, len(Defaults))
	for k, v := range Defaults {
		m[k] = v
	}
	return m
}

func loadFile(path string) (map[string]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotate(err, "reading user settings file")
	}
	var raw map[string]Entry
	if err := k8syaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Annotate(err, "parsing user settings file")
	}
	merged := cloneDefaults()
	for k, v := range raw {
		merged[k] = v
	}
	return merged, nil
}

// ResetToDefaults overwrites the in-memory snapshot with Defaults and
// persists it if a path is configured (spec §4.5: "reset user settings to
// defaults" on `load`).
func (s *Store) ResetToDefaults() error {
	s.current = cloneDefaults()
	return s.persist()
}

// Apply merges updates over the current snapshot (unnamed defaults remain
// untouched) and persists the result if a path is configured. This mirrors
// the original's _extract_settings: every Update starts from Defaults for
// any name not already present, and an absent Value becomes -1.
func (s *Store) Apply(updates []Update) error {
	for _, u := range updates {
		value := -1
		if u.Value != nil {
			value = *u.Value
		}
		s.current[u.Name] = Entry{Active: u.Active, Value: value}
	}
	return s.persist()
}

func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	data, err := k8syaml.Marshal(s.current)
	if err != nil {
		return errors.Annotate(err, "marshaling user settings snapshot")
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.Annotate(err, "writing user settings file")
	}
	return nil
}

// Snapshot returns a copy of the current settings map.
func (s *Store) Snapshot() map[string]Entry {
	out := make(map[string]Entry, len(s.current))
	for k, v := range s.current {
		out[k] = v
	}
	return out
}
