package jobs

import (
	"io"

	"github.com/Cyclone1070/tokenscan/internal/scraper"
	"github.com/Cyclone1070/tokenscan/internal/utils"
)

// RunScan scans the page at url and prints every text node holding an MBSD
// token to writer. Nothing is printed unless the whole scan succeeds.
func RunScan(writer io.Writer, url string, options utils.CollectorOptions) error {
	matches, err := scraper.ScanPage(url, options)
	if err != nil {
		return err
	}
	return PrintMatches(writer, matches)
}
