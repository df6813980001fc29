// Package htmlutil provides HTML query helpers for the Battle.net page scrapers.
package htmlutil

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var (
	multiSpacePattern = regexp.MustCompile(`\s+`)
	firstIntPattern   = regexp.MustCompile(`-?\d[\d,]*`)
)

// Parse builds a queryable document from an HTML body.
func Parse(body []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

// Text returns the concatenated text of every node in sel, with runs of
// whitespace collapsed and the ends trimmed.
func Text(sel *goquery.Selection) string {
	var sb strings.Builder
	for _, n := range sel.Nodes {
		nodeText(n, &sb)
	}
	return Collapse(sb.String())
}

// SelectText is Text(doc.Find(selector)).
func SelectText(doc *goquery.Document, selector string) string {
	return Text(doc.Find(selector))
}

// Collapse trims s and folds inner whitespace to single spaces.
func Collapse(s string) string {
	return strings.TrimSpace(multiSpacePattern.ReplaceAllString(s, " "))
}

// FirstInt returns the first integer in s, ignoring thousands separators.
// The second result is false when s contains no digits.
func FirstInt(s string) (int, bool) {
	m := firstIntPattern.FindString(s)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsNotFound detects the armory's error pages, which are served with 200 OK.
func IsNotFound(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range []string{
		"page not found",
		"profile not found",
		"error 404",
		"the profile you requested is not available",
	} {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

func nodeText(n *html.Node, sb *strings.Builder) {
	if n == nil {
		return
	}
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
	default:
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		nodeText(c, sb)
	}
}
