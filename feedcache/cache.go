package feedcache

import (
	"fmt"
	"net/http"

	"geofeed/feed"

	"github.com/rs/zerolog"
)

// NewFeedCache creates a conditional cache over the primary feed endpoint.
// The snapshot file's modification time is the only freshness signal sent to
// the remote; the snapshot content is only ever replaced by bytes that passed
// integrity verification.
func NewFeedCache(logger zerolog.Logger, fs feed.FileSystem, fetcher feed.HTTPFetcher, verifier feed.IntegrityVerifier, feedURL string, snapshotPath string) feed.ContentResolver {
	return &feedCacheImpl{
		logger:       logger,
		fs:           fs,
		fetcher:      fetcher,
		verifier:     verifier,
		feedURL:      feedURL,
		snapshotPath: snapshotPath,
	}
}

type feedCacheImpl struct {
	logger       zerolog.Logger
	fs           feed.FileSystem
	fetcher      feed.HTTPFetcher
	verifier     feed.IntegrityVerifier
	feedURL      string
	snapshotPath string
}

func (c *feedCacheImpl) ResolveContent() (content []byte, source feed.ContentSource, err error) {
	headers := make(map[string]string)
	if modTime, merr := c.fs.ModTime(c.snapshotPath); merr == nil {
		headers["If-Modified-Since"] = modTime.UTC().Format(http.TimeFormat)
	}

	c.logger.Info().Msgf("Fetching IP geolocation data from %v", c.feedURL)

	response, err := c.fetcher.Get(c.feedURL, headers)
	if err != nil {
		err = fmt.Errorf("error while fetching primary feed: %v", err)
		return
	}

	switch response.StatusCode {
	case http.StatusOK:
		c.logger.Info().Msg("New version of the feed found, downloading")

		if err = c.verifier.Verify(response.Body); err != nil {
			return
		}

		if err = c.fs.WriteFile(c.snapshotPath, response.Body); err != nil {
			err = fmt.Errorf("error while updating local snapshot: %v", err)
			return
		}

		c.logger.Info().Msg("Local snapshot updated")
		content = response.Body
		source = feed.SourceFresh

	case http.StatusNotModified:
		c.logger.Info().Msg("Local snapshot is already up to date")

		if content, err = c.fs.ReadFile(c.snapshotPath); err != nil {
			err = fmt.Errorf("error while reading local snapshot: %v", err)
			return
		}

		source = feed.SourceCached

	default:
		err = fmt.Errorf("failed to fetch primary feed: HTTP %v", response.StatusCode)
	}

	return
}
