package scraper

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gocolly/colly/v2"

	"github.com/Cyclone1070/tokenscan/internal/utils"
)

// FetchPage visits url once with a fresh collector and returns the response
// body, already converted to UTF-8 by colly. Transport failures and non-2xx
// statuses come back as *FetchError.
func FetchPage(url string, options utils.CollectorOptions) ([]byte, error) {
	var body []byte
	var fetchErr *FetchError

	collector := utils.ConfiguredCollector(options)

	// ParseHTTPErrorResponse is on, so every status reaches OnResponse.
	collector.OnResponse(func(r *colly.Response) {
		if r.StatusCode < 200 || r.StatusCode > 299 {
			fetchErr = &FetchError{URL: url, StatusCode: r.StatusCode, Err: errors.New(http.StatusText(r.StatusCode))}
			return
		}
		body = r.Body
	})

	collector.OnError(func(r *colly.Response, err error) {
		fetchErr = &FetchError{URL: url, StatusCode: r.StatusCode, Err: err}
	})

	// Visit is a blocking call, both callbacks have run when it returns.
	if err := collector.Visit(url); err != nil {
		if fetchErr != nil {
			return nil, fetchErr
		}
		return nil, &FetchError{URL: url, Err: err}
	}
	if fetchErr != nil {
		return nil, fetchErr
	}

	slog.Debug("page fetched", "url", url, "bytes", len(body))
	return body, nil
}
