package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Cyclone1070/tokenscan/internal/utils"
)

func TestConfiguredCollector(t *testing.T) {
	t.Run("send the configured user agent", func(t *testing.T) {
		var got string
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("User-Agent")
		}))
		defer testServer.Close()

		collector := utils.ConfiguredCollector(utils.CollectorOptions{UserAgent: "tokenscan-test"})
		if err := collector.Visit(testServer.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got != "tokenscan-test" {
			t.Errorf("got %q, want %q", got, "tokenscan-test")
		}
	})

	t.Run("send a user agent when randomised", func(t *testing.T) {
		var got string
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("User-Agent")
		}))
		defer testServer.Close()

		collector := utils.ConfiguredCollector(utils.CollectorOptions{RandomUserAgent: true})
		if err := collector.Visit(testServer.URL); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got == "" {
			t.Error("got empty user agent")
		}
	})

	t.Run("fail when the request timeout is exceeded", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer testServer.Close()

		collector := utils.ConfiguredCollector(utils.CollectorOptions{RequestTimeout: 20 * time.Millisecond})

		if err := collector.Visit(testServer.URL); err == nil {
			t.Error("got no error, want timeout")
		}
	})
}
