package jobs

import (
	"fmt"
	"io"
)

// PrintMatches writes one `<index>: "<text>"` line per match. Quotes inside
// text are written as is.
func PrintMatches(writer io.Writer, matches []string) error {
	for i, match := range matches {
		if _, err := fmt.Fprintf(writer, "%d: \"%s\"\n", i, match); err != nil {
			return err
		}
	}
	return nil
}
