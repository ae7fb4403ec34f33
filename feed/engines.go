package feed

// ContentResolver hands out the primary feed body, either freshly downloaded
// and verified, or read back from the local snapshot when the remote reports
// no change.
type ContentResolver interface {
	ResolveContent() (content []byte, source ContentSource, err error)
}

// IntegrityVerifier checks a downloaded body against its published digest.
// A verification failure is fatal for the run.
type IntegrityVerifier interface {
	Verify(body []byte) error
}

// RecordFilter selects feed records whose country code is in the given set.
// The codes must already be upper-cased; comparison is exact.
type RecordFilter interface {
	Filter(content []byte, countryCodes []string) (lines []string, summary MatchSummary)
}

// Aggregator fetches the CIDR list of each ASN target and flattens them into
// one ordered line sequence. Per-target failures are contained: a failed
// target contributes no lines and has no entry in counts.
type Aggregator interface {
	Aggregate(targets []string) (lines []string, counts map[string]int)
}

// ArtifactWriter maintains the output CIDR artifact.
type ArtifactWriter interface {
	Replace(lines []string) error
	Append(lines []string) error
}
