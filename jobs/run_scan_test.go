package jobs_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Cyclone1070/tokenscan/internal/scraper"
	"github.com/Cyclone1070/tokenscan/internal/utils"
	"github.com/Cyclone1070/tokenscan/jobs"
)

func TestRunScan(t *testing.T) {
	testCases := []struct {
		description string
		content     string
		want        string
	}{
		{
			"renumber over matches only",
			"<p>MBSD{abc123}</p><p>no match here</p><p>MBSD{XYZ}</p>",
			"0: \"MBSD{abc123}\"\n1: \"MBSD{XYZ}\"\n",
		},
		{
			"print the entire text node",
			"<p>prefix MBSD{token} suffix</p>",
			"0: \"prefix MBSD{token} suffix\"\n",
		},
		{
			"skip empty tokens",
			"<p>MBSD{}</p>",
			"",
		},
		{
			"skip lowercase prefixes",
			"<p>mbsd{abc}</p>",
			"",
		},
		{
			"print tokens hidden in comments",
			"<!-- MBSD{hidden} --><p>x</p>",
			"0: \" MBSD{hidden} \"\n",
		},
		{
			"print nothing without matches",
			"<h1>Markdown sample</h1><p>Lorem ipsum</p>",
			"",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.description, func(t *testing.T) {
			testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, "<html><body>")
				fmt.Fprintf(w, "%s", testCase.content)
				io.WriteString(w, "</body></html>")
			}))
			defer testServer.Close()

			var buffer bytes.Buffer
			err := jobs.RunScan(&buffer, testServer.URL, utils.CollectorOptions{})

			if err != nil {
				t.Errorf("unexpected error: %v", err)
			} else if got := buffer.String(); got != testCase.want {
				t.Errorf("got %q, want %q", got, testCase.want)
			}
		})
	}

	t.Run("print the same output on every run", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, "<html><body><p>MBSD{one}</p><div>MBSD{two} and more</div></body></html>")
		}))
		defer testServer.Close()

		var first, second bytes.Buffer
		if err := jobs.RunScan(&first, testServer.URL, utils.CollectorOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := jobs.RunScan(&second, testServer.URL, utils.CollectorOptions{}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if first.String() != second.String() {
			t.Errorf("first run %q, second run %q", first.String(), second.String())
		}
	})

	t.Run("print nothing when the request fails", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "<p>MBSD{hidden}</p>", http.StatusForbidden)
		}))
		defer testServer.Close()

		var buffer bytes.Buffer
		err := jobs.RunScan(&buffer, testServer.URL, utils.CollectorOptions{})

		var fetchErr *scraper.FetchError
		if !errors.As(err, &fetchErr) {
			t.Errorf("got %v, want *scraper.FetchError", err)
		}
		if buffer.Len() != 0 {
			t.Errorf("got output %q, want none", buffer.String())
		}
	})
}
