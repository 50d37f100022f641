package packing

import (
	"fmt"
	"strings"
)

// SortKey picks the field the view is ordered by.
type SortKey int

const (
	SortByInput SortKey = iota
	SortByDescription
	SortByPacked
)

var sortKeyNames = [...]string{
	SortByInput:       "input",
	SortByDescription: "description",
	SortByPacked:      "packed",
}

func (k SortKey) String() string {
	if k < 0 || int(k) >= len(sortKeyNames) {
		return fmt.Sprintf("SortKey(%d)", int(k))
	}
	return sortKeyNames[k]
}

// Label is the human wording used by the front ends.
func (k SortKey) Label() string {
	switch k {
	case SortByDescription:
		return "name"
	case SortByPacked:
		return "packed status"
	default:
		return "input order"
	}
}

// Next cycles input -> description -> packed -> input.
func (k SortKey) Next() SortKey {
	return SortKey((int(k) + 1) % len(sortKeyNames))
}

// ParseSortKey accepts the lower-case names plus "name" as an alias.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "input", "":
		return SortByInput, nil
	case "description", "name":
		return SortByDescription, nil
	case "packed":
		return SortByPacked, nil
	}
	return SortByInput, fmt.Errorf("unknown sort key %q (want input, description or packed)", s)
}

// SortMode is the direction applied after ordering.
type SortMode int

const (
	Ascending SortMode = iota
	Descending
)

func (m SortMode) String() string {
	switch m {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	}
	return fmt.Sprintf("SortMode(%d)", int(m))
}

// Flip returns the opposite direction.
func (m SortMode) Flip() SortMode {
	if m == Descending {
		return Ascending
	}
	return Descending
}

// ParseSortMode accepts "ascending"/"asc" and "descending"/"desc".
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ascending", "asc", "":
		return Ascending, nil
	case "descending", "desc":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort mode %q (want ascending or descending)", s)
}

func (k SortKey) MarshalText() ([]byte, error)  { return []byte(k.String()), nil }
func (m SortMode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }
