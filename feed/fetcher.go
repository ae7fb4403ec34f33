package feed

// FetchResult is what a collaborator GET request yields.
type FetchResult struct {
	StatusCode int
	Body       []byte
}

// HTTPFetcher issues a single GET request with the given headers. It is the
// only transport surface the pipeline knows about.
type HTTPFetcher interface {
	Get(url string, headers map[string]string) (FetchResult, error)
}
