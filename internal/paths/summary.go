package paths

import "github.com/rivo/uniseg"

// SummaryKind classifies a search result.
type SummaryKind uint8

const (
	// NoMatch means no executable starts with the query.
	NoMatch SummaryKind = iota

	// Exact means an executable is named exactly the query.
	Exact

	// Partial means an executable name extends the query.
	Partial
)

// String returns the kind name.
func (k SummaryKind) String() string {
	switch k {
	case Exact:
		return "Exact"
	case Partial:
		return "Partial"
	default:
		return "NoMatch"
	}
}

// Summary is one search result. For a Partial result Rest holds the part of
// the name after the query.
type Summary struct {
	Kind  SummaryKind
	Match string
	Rest  string
}

// IsExact reports whether the result is an exact match.
func (s Summary) IsExact() bool {
	return s.Kind == Exact
}

// IsPartial reports whether the result is a prefix match.
func (s Summary) IsPartial() bool {
	return s.Kind == Partial
}

// IsNoMatch reports whether nothing matched.
func (s Summary) IsNoMatch() bool {
	return s.Kind == NoMatch
}

// Name returns the full executable name, or "" for NoMatch.
func (s Summary) Name() string {
	return s.Match + s.Rest
}

// Shift returns the display width of the suggested rest of the name, the
// number of columns a renderer must move back over it.
func (s Summary) Shift() int {
	if s.Kind != Partial {
		return 0
	}
	return uniseg.StringWidth(s.Rest)
}
