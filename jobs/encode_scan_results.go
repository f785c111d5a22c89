package jobs

import (
	"encoding/json"
	"io"
)

type ScanResult struct {
	URL            string   `json:"url"`
	MatchedStrings []string `json:"matched_strings"`
}

type scanResults struct {
	CrawlerResults []ScanResult `json:"crawler_results"`
}

// EncodeScanResults writes {"ok": {"crawler_results": [...]}} when err is nil
// and {"error": msg} otherwise.
func EncodeScanResults(writer io.Writer, results []ScanResult, err error) error {
	if err != nil {
		return json.NewEncoder(writer).Encode(map[string]string{"error": err.Error()})
	}
	if results == nil {
		results = []ScanResult{}
	}
	for i := range results {
		if results[i].MatchedStrings == nil {
			results[i].MatchedStrings = []string{}
		}
	}
	return json.NewEncoder(writer).Encode(map[string]scanResults{"ok": {CrawlerResults: results}})
}
