package asn

import (
	"errors"
	"testing"

	"geofeed/feed"
	"geofeed/testutils"

	"github.com/stretchr/testify/assert"
)

const testBaseURL = "http://example/as"

type mockFetcher struct {
	responses map[string]feed.FetchResult
	errs      map[string]error
	gotURLs   []string
}

func (m *mockFetcher) Get(url string, headers map[string]string) (feed.FetchResult, error) {
	m.gotURLs = append(m.gotURLs, url)
	if err, ok := m.errs[url]; ok {
		return feed.FetchResult{}, err
	}
	return m.responses[url], nil
}

func TestAggregateSkipsBlankLinesButCountsThem(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	fetcher := &mockFetcher{responses: map[string]feed.FetchResult{
		"http://example/as/1234/ipv4-aggregated.txt": {StatusCode: 200, Body: []byte("1.2.3.0/24\n\n4.5.6.0/22")},
	}}
	a := NewAggregator(testutils.NewTestLogger(t), fetcher, testBaseURL)

	// Act
	lines, counts := a.Aggregate([]string{"1234"})

	// Assert
	assert.Equal([]string{"1.2.3.0/24", "4.5.6.0/22"}, lines)
	assert.Equal(3, counts["1234"])
}

func TestAggregatePreservesTargetAndSourceOrder(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	fetcher := &mockFetcher{responses: map[string]feed.FetchResult{
		"http://example/as/100/ipv4-aggregated.txt": {StatusCode: 200, Body: []byte("9.0.0.0/8\n1.0.0.0/8")},
		"http://example/as/200/ipv4-aggregated.txt": {StatusCode: 200, Body: []byte("5.0.0.0/8")},
	}}
	a := NewAggregator(testutils.NewTestLogger(t), fetcher, testBaseURL)

	// Act
	lines, counts := a.Aggregate([]string{"100", "200"})

	// Assert
	assert.Equal([]string{"9.0.0.0/8", "1.0.0.0/8", "5.0.0.0/8"}, lines)
	assert.Equal(2, counts["100"])
	assert.Equal(1, counts["200"])
	assert.Equal([]string{
		"http://example/as/100/ipv4-aggregated.txt",
		"http://example/as/200/ipv4-aggregated.txt",
	}, fetcher.gotURLs)
}

func TestAggregateFailedTargetIsIsolated(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	fetcher := &mockFetcher{
		responses: map[string]feed.FetchResult{
			"http://example/as/100/ipv4-aggregated.txt": {StatusCode: 200, Body: []byte("1.0.0.0/8")},
			"http://example/as/300/ipv4-aggregated.txt": {StatusCode: 200, Body: []byte("3.0.0.0/8")},
		},
		errs: map[string]error{
			"http://example/as/200/ipv4-aggregated.txt": errors.New("connection reset"),
		},
	}
	a := NewAggregator(testutils.NewTestLogger(t), fetcher, testBaseURL)

	// Act
	lines, counts := a.Aggregate([]string{"100", "200", "300"})

	// Assert
	assert.Equal([]string{"1.0.0.0/8", "3.0.0.0/8"}, lines)
	_, present := counts["200"]
	assert.False(present)
	assert.Equal(1, counts["100"])
	assert.Equal(1, counts["300"])
}

func TestAggregateNonSuccessStatusIsIsolated(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	fetcher := &mockFetcher{responses: map[string]feed.FetchResult{
		"http://example/as/100/ipv4-aggregated.txt": {StatusCode: 404},
		"http://example/as/200/ipv4-aggregated.txt": {StatusCode: 200, Body: []byte("2.0.0.0/8")},
	}}
	a := NewAggregator(testutils.NewTestLogger(t), fetcher, testBaseURL)

	// Act
	lines, counts := a.Aggregate([]string{"100", "200"})

	// Assert
	assert.Equal([]string{"2.0.0.0/8"}, lines)
	_, present := counts["100"]
	assert.False(present)
}

func TestAggregateKeepsCrossTargetDuplicates(t *testing.T) {
	assert := assert.New(t)

	// Arrange
	fetcher := &mockFetcher{responses: map[string]feed.FetchResult{
		"http://example/as/100/ipv4-aggregated.txt": {StatusCode: 200, Body: []byte("1.0.0.0/8")},
		"http://example/as/200/ipv4-aggregated.txt": {StatusCode: 200, Body: []byte("1.0.0.0/8")},
	}}
	a := NewAggregator(testutils.NewTestLogger(t), fetcher, testBaseURL)

	// Act
	lines, _ := a.Aggregate([]string{"100", "200"})

	// Assert
	assert.Equal([]string{"1.0.0.0/8", "1.0.0.0/8"}, lines)
}

func TestSplitRawLines(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(splitRawLines(""))
	assert.Equal([]string{""}, splitRawLines("\n"))
	assert.Equal([]string{"a", "b"}, splitRawLines("a\nb"))
	// A single trailing newline terminates the last line, it does not start an empty one.
	assert.Equal([]string{"a", "b"}, splitRawLines("a\nb\n"))
	assert.Equal([]string{"a", "", "b"}, splitRawLines("a\n\nb"))
	assert.Equal([]string{"a", "b"}, splitRawLines("a\r\nb\r\n"))
}
