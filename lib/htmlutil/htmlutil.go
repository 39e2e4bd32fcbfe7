package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// JoinedText flattens a selection to text with a single space between
// text nodes, so that text split across inline elements does not run
// together.
func JoinedText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(node *html.Node, parts *[]string) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		trimmed := strings.TrimSpace(node.Data)
		if trimmed != "" {
			*parts = append(*parts, trimmed)
		}
		return
	}
	child := node.FirstChild
	for child != nil {
		collectText(child, parts)
		child = child.NextSibling
	}
}
