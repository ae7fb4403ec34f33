package integrity

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"strings"

	"geofeed/feed"

	"github.com/rs/zerolog"
)

// NewSHA256Verifier creates a verifier that compares the SHA-256 digest of a
// body against the digest published at digestURL. The published format is the
// usual sha256sum output, so only the first whitespace-delimited token of the
// response is the digest.
func NewSHA256Verifier(logger zerolog.Logger, fetcher feed.HTTPFetcher, digestURL string) feed.IntegrityVerifier {
	return &sha256VerifierImpl{logger: logger, fetcher: fetcher, digestURL: digestURL}
}

type sha256VerifierImpl struct {
	logger    zerolog.Logger
	fetcher   feed.HTTPFetcher
	digestURL string
}

// MismatchError reports a digest comparison failure with both digests for
// diagnosis.
type MismatchError struct {
	Expected   string
	Calculated string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("content digest mismatch: expected %v, calculated %v", e.Expected, e.Calculated)
}

func (v *sha256VerifierImpl) Verify(body []byte) error {
	v.logger.Info().Msgf("Verifying content integrity against %v", v.digestURL)

	response, err := v.fetcher.Get(v.digestURL, nil)
	if err != nil {
		return fmt.Errorf("error while fetching expected digest: %v", err)
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to fetch expected digest: HTTP %v", response.StatusCode)
	}

	expected := ""
	if fields := strings.Fields(string(response.Body)); len(fields) > 0 {
		expected = fields[0]
	}

	sum := sha256.Sum256(body)
	calculated := hex.EncodeToString(sum[:])

	if calculated != expected {
		return &MismatchError{Expected: expected, Calculated: calculated}
	}

	v.logger.Info().Msg("Integrity verification successful")
	return nil
}
