package entities

import "strings"

// CapitalEntry represents a U.S. state and its capital city.
type CapitalEntry struct {
	State   string `json:"state"`   // state name, e.g. "Alabama"
	Capital string `json:"capital"` // capital city, e.g. "Montgomery"
}

// Equal reports whether both entries name the same state and capital, ignoring case.
func (e CapitalEntry) Equal(other CapitalEntry) bool {
	return strings.EqualFold(e.State, other.State) &&
		strings.EqualFold(e.Capital, other.Capital)
}

func (e CapitalEntry) String() string {
	return e.State + " (" + e.Capital + ")"
}
