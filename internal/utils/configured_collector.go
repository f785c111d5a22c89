// Package utils provide utilities functions
package utils

import (
	"time"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

// CollectorOptions tunes the collector built by ConfiguredCollector.
// The zero value sends colly's default User-Agent and never times out.
type CollectorOptions struct {
	RequestTimeout  time.Duration
	UserAgent       string
	RandomUserAgent bool
}

func ConfiguredCollector(options CollectorOptions) *colly.Collector {
	// Create a new collector with the default configuration
	collector := colly.NewCollector()

	// colly defaults to a 10s client timeout, zero means wait forever
	collector.SetRequestTimeout(options.RequestTimeout)

	// colly silently truncates bodies past 10 MiB by default, zero lifts the cap
	collector.MaxBodySize = 0

	// Hand every status to OnResponse, callers decide what counts as failure.
	collector.ParseHTTPErrorResponse = true

	if options.UserAgent != "" {
		collector.UserAgent = options.UserAgent
	}
	// RandomUserAgent overrides the fixed one on every request.
	if options.RandomUserAgent {
		extensions.RandomUserAgent(collector)
	}

	return collector
}
