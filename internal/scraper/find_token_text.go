package scraper

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// TokenPattern matches an MBSD{...} token. The prefix is case sensitive and
// the braces must hold at least one alphanumeric character.
const TokenPattern = `MBSD\{[0-9a-zA-Z]+\}`

var TokenRegexp = regexp.MustCompile(TokenPattern)

// FindTokenText returns the full text of every text or comment node in doc
// that contains a match of pattern, in document order. Duplicates are kept.
// Attribute values are not searched.
func FindTokenText(doc *goquery.Document, pattern *regexp.Regexp) []string {
	matches := []string{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if (n.Type == html.TextNode || n.Type == html.CommentNode) && pattern.MatchString(n.Data) {
			matches = append(matches, n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range doc.Nodes {
		walk(node)
	}

	return matches
}
