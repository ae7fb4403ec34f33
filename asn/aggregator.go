package asn

import (
	"fmt"
	"strings"

	"geofeed/feed"

	"github.com/rs/zerolog"
)

const ipv4ListName = "ipv4-aggregated.txt"

// NewAggregator creates an aggregator that fetches per-ASN CIDR lists from
// baseURL, one target at a time in caller order.
func NewAggregator(logger zerolog.Logger, fetcher feed.HTTPFetcher, baseURL string) feed.Aggregator {
	return &aggregatorImpl{logger: logger, fetcher: fetcher, baseURL: baseURL}
}

type aggregatorImpl struct {
	logger  zerolog.Logger
	fetcher feed.HTTPFetcher
	baseURL string
}

// Aggregate fetches each target independently. A target that cannot be
// fetched is logged at warn level, contributes no lines and gets no counts
// entry; remaining targets are still processed. The per-target count is the
// raw source line count, blank interior lines included, while blank lines are
// never emitted.
func (a *aggregatorImpl) Aggregate(targets []string) (lines []string, counts map[string]int) {
	counts = make(map[string]int)

	for _, target := range targets {
		url := fmt.Sprintf("%v/%v/%v", a.baseURL, target, ipv4ListName)
		a.logger.Info().Msgf("Fetching ASN data from %v", url)

		response, err := a.fetcher.Get(url, nil)
		if err != nil {
			a.logger.Warn().Err(err).Msgf("Error while fetching AS%v", target)
			continue
		}

		if response.StatusCode < 200 || response.StatusCode > 299 {
			a.logger.Warn().Msgf("Failed to fetch AS%v: HTTP %v", target, response.StatusCode)
			continue
		}

		rawLines := splitRawLines(string(response.Body))
		for _, line := range rawLines {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}

		counts[target] = len(rawLines)
		a.logger.Info().Msgf("AS%v CIDR blocks fetched: %v", target, len(rawLines))
	}

	return
}

// splitRawLines splits like a text reader would: a final newline terminates
// the last line rather than starting an empty one.
func splitRawLines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return lines
}
