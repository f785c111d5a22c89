package scraper

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
)

// ParseDocument parses r as HTML. Broken markup is repaired the way browsers
// do it, so an error here means the reader itself failed.
func ParseDocument(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}
