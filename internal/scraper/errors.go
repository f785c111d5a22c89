package scraper

import "fmt"

// FetchError is returned when a page could not be fetched. StatusCode is 0
// when no response was received.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("gocolly request to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("gocolly request to %s failed with status %d: %v", e.URL, e.StatusCode, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
