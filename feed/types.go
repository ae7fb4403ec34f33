package feed

import "strings"

// GeoRecord is one entry of the primary feed: a CIDR block and the 2-letter
// country code it is assigned to.
type GeoRecord struct {
	CIDR        string
	CountryCode string
}

// MatchSummary maps each requested country code to the number of selected
// records bearing that code. Codes with zero matches still have an entry.
type MatchSummary map[string]int

// Total returns the sum of all per-code counts.
func (s MatchSummary) Total() (total int) {
	for _, count := range s {
		total += count
	}
	return
}

// NormalizeCountryCodes upper-cases the given country codes once, so that all
// later comparisons are exact string matches.
func NormalizeCountryCodes(codes []string) (normalized []string) {
	for _, code := range codes {
		normalized = append(normalized, strings.ToUpper(code))
	}
	return
}

// ContentSource tells where the primary feed content came from.
type ContentSource int

// Possible content sources.
const (
	// SourceFresh means the content was just downloaded and verified.
	SourceFresh ContentSource = iota

	// SourceCached means the remote reported no change and the local snapshot
	// was used.
	SourceCached
)

func (s ContentSource) String() string {
	switch s {
	case SourceFresh:
		return "fresh"
	case SourceCached:
		return "cached"
	}
	return "unknown"
}
