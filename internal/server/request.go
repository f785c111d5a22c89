package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/Cyclone1070/tokenscan/internal/scraper"
	"github.com/Cyclone1070/tokenscan/internal/utils"
	"github.com/Cyclone1070/tokenscan/jobs"
)

var errMissingURL = errors.New("missing url query parameter")

// RequestHandler scans the page named by the url query parameter.
type RequestHandler struct {
	collectorOptions utils.CollectorOptions
}

func NewRequestHandler(collectorOptions utils.CollectorOptions) *RequestHandler {
	return &RequestHandler{collectorOptions: collectorOptions}
}

// ServeHTTP answers GET /request?url=<page>. Scan failures are reported in
// the body with status 200, only a missing url is a client error.
//
//	200 {"ok": {"crawler_results": [{"url": ..., "matched_strings": [...]}]}}
//	200 {"error": ...} when the page cannot be fetched or parsed
//	400 {"error": "missing url query parameter"}
func (h *RequestHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := slog.Default().With("request_id", middleware.GetReqID(ctx))
	w.Header().Set("Content-Type", "application/json")

	url := r.URL.Query().Get("url")
	if url == "" {
		w.WriteHeader(http.StatusBadRequest)
		jobs.EncodeScanResults(w, nil, errMissingURL)
		return
	}
	logger.InfoContext(ctx, "scan requested", "url", url)

	matches, err := scraper.ScanPage(url, h.collectorOptions)
	if err != nil {
		logger.ErrorContext(ctx, "scan failed", "url", url, "error", err)
	}

	results := []jobs.ScanResult{{URL: url, MatchedStrings: matches}}
	if err := jobs.EncodeScanResults(w, results, err); err != nil {
		logger.ErrorContext(ctx, "failed to encode scan results", "error", err)
	}
}
