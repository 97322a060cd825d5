// =============================================================================
// Unit Resource Enum Migrator - Enum Mapping Module
// =============================================================================
//
// This module defines the lookup tables that drive the migration. A mapping
// is an ordered list of (exact line text -> replacement line text) pairs.
//
// MATCHING RULES:
//   - A key matches only when it equals the whole trimmed line.
//   - Entries are checked in declaration order; the first match wins.
//   - Aliases are separate entries that share a value. They are never
//     collapsed into one entry.
//
// BUILT-IN TABLES:
//   Faction:   INDEPENDENT=0, OGS=1, TECHNICOS=2, LUCHADORES_UNIDOS=3,
//              LOS_RUDOS=4 (alias "Rudos"), LOS_BANDITOS=5
//   UnitClass: LUCHADOR=0, STRIKER=1, TECHNICIAN=2, HIGH_FLYER=3,
//              POWER_HOUSE=4, BRAWLER=5, FAN=6
//
// =============================================================================

package enummap

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// MAPPING STRUCTURE
// =============================================================================

// Entry is a single substitution: Key is the exact assignment statement to
// look for, Value is the statement that replaces it.
type Entry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Mapping is a named, ordered set of entries.
type Mapping struct {
	// Name identifies the mapping in logs and reports (e.g. "faction").
	Name string `yaml:"name"`

	// Entries are checked in order. Keys must be unique within a mapping.
	Entries []Entry `yaml:"entries"`
}

// ErrDuplicateKey is returned by Validate when two entries share a key.
var ErrDuplicateKey = errors.New("duplicate mapping key")

// Match returns the first entry whose key equals trimmed.
func (m Mapping) Match(trimmed string) (Entry, bool) {
	for _, e := range m.Entries {
		if e.Key == trimmed {
			return e, true
		}
	}
	return Entry{}, false
}

// Apply checks line against the mapping. On a match the first occurrence of
// the key within the untrimmed line is replaced, so surrounding whitespace
// and the line terminator survive.
//
// RETURNS:
//   - The (possibly rewritten) line.
//   - true if a replacement was made.
func (m Mapping) Apply(line string) (string, bool) {
	e, ok := m.Match(strings.TrimSpace(line))
	if !ok {
		return line, false
	}
	return strings.Replace(line, e.Key, e.Value, 1), true
}

// Clone returns a deep copy of the mapping.
func (m Mapping) Clone() Mapping {
	entries := make([]Entry, len(m.Entries))
	copy(entries, m.Entries)
	return Mapping{Name: m.Name, Entries: entries}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks that the mapping can be used for exact-line matching.
//
// CHECKS:
//   - The mapping has a name and at least one entry.
//   - Keys and values are non-empty.
//   - Keys carry no leading/trailing whitespace, since they are compared
//     against trimmed lines and could otherwise never match.
//   - Keys are unique. Values may repeat (aliases).
func (m Mapping) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("mapping name is required")
	}
	if len(m.Entries) == 0 {
		return fmt.Errorf("mapping %q has no entries", m.Name)
	}

	seen := make(map[string]int, len(m.Entries))
	for i, e := range m.Entries {
		if e.Key == "" {
			return fmt.Errorf("mapping %q entry %d: key is empty", m.Name, i+1)
		}
		if e.Value == "" {
			return fmt.Errorf("mapping %q entry %d: value is empty", m.Name, i+1)
		}
		if strings.TrimSpace(e.Key) != e.Key {
			return fmt.Errorf("mapping %q entry %d: key %q has surrounding whitespace", m.Name, i+1, e.Key)
		}
		if prev, ok := seen[e.Key]; ok {
			return fmt.Errorf("mapping %q entries %d and %d: %w: %q", m.Name, prev, i+1, ErrDuplicateKey, e.Key)
		}
		seen[e.Key] = i + 1
	}

	return nil
}

// ValidateAll validates every mapping and also rejects two mappings with the
// same name.
func ValidateAll(mappings []Mapping) error {
	if len(mappings) == 0 {
		return errors.New("no mappings configured")
	}

	names := make(map[string]bool, len(mappings))
	var errs []error
	for _, m := range mappings {
		if err := m.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if names[m.Name] {
			errs = append(errs, fmt.Errorf("mapping %q is defined more than once", m.Name))
		}
		names[m.Name] = true
	}

	return errors.Join(errs...)
}
