package transport

import (
	"io/ioutil"
	"net/http"

	"geofeed/feed"

	"github.com/rs/zerolog"
)

// NewHTTPFetcher creates an HTTPFetcher backed by net/http. One request, one
// response; retries and timeouts beyond the client defaults are not this
// layer's business.
func NewHTTPFetcher(logger zerolog.Logger) feed.HTTPFetcher {
	return &httpFetcherImpl{logger: logger, client: &http.Client{}}
}

type httpFetcherImpl struct {
	logger zerolog.Logger
	client *http.Client
}

func (f *httpFetcherImpl) Get(url string, headers map[string]string) (result feed.FetchResult, err error) {
	request, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return
	}

	for key, value := range headers {
		request.Header.Set(key, value)
	}

	f.logger.Debug().Msgf("GET %v", url)

	response, err := f.client.Do(request)
	if err != nil {
		return
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		return
	}

	result = feed.FetchResult{StatusCode: response.StatusCode, Body: body}
	return
}
