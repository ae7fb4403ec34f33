package cidrfilter

import (
	"bufio"
	"bytes"
	"strings"

	"geofeed/feed"

	"github.com/rs/zerolog"
)

// NewRecordFilter creates a filter that selects primary feed records by
// country code.
func NewRecordFilter(logger zerolog.Logger) feed.RecordFilter {
	return &recordFilterImpl{logger: logger}
}

type recordFilterImpl struct {
	logger zerolog.Logger
}

// Filter scans the feed content line by line. A line is a record only if it
// has exactly two whitespace-separated columns: the CIDR block and the country
// code. Anything else is silently dropped, the feed format is lossy.
func (f *recordFilterImpl) Filter(content []byte, countryCodes []string) (lines []string, summary feed.MatchSummary) {
	summary = make(feed.MatchSummary)
	for _, code := range countryCodes {
		summary[code] = 0
	}

	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		columns := strings.Fields(scanner.Text())
		if len(columns) != 2 {
			continue
		}

		record := feed.GeoRecord{CIDR: columns[0], CountryCode: columns[1]}
		if _, requested := summary[record.CountryCode]; !requested {
			continue
		}

		// Only the CIDR block is emitted, not the country code.
		lines = append(lines, record.CIDR)
		summary[record.CountryCode]++
	}

	return
}
