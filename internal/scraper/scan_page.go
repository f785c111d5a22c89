package scraper

import (
	"bytes"
	"log/slog"

	"github.com/Cyclone1070/tokenscan/internal/utils"
)

// ScanPage fetches url, parses it and returns the text nodes holding an
// MBSD token.
func ScanPage(url string, options utils.CollectorOptions) ([]string, error) {
	body, err := FetchPage(url, options)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	matches := FindTokenText(doc, TokenRegexp)
	slog.Debug("scan complete", "url", url, "matches", len(matches))
	return matches, nil
}
