package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestGetText(t *testing.T) {
	doc := parse(t, `<div id="a">one<span>two</span>three</div>`)
	sel := doc.Find("#a")
	require.Len(t, sel.Nodes, 1)
	require.Equal(t, "onetwothree", GetText(sel.Nodes[0]))
}

func TestJoinedText(t *testing.T) {
	doc := parse(t, `<div id="a">
		one of the groups
		<span>of stars</span>
		that make up the universe
	</div>`)
	require.Equal(
		t,
		"one of the groups of stars that make up the universe",
		JoinedText(doc.Find("#a")),
	)
}

func TestJoinedTextEmpty(t *testing.T) {
	doc := parse(t, `<div id="a"><span>  </span></div>`)
	require.Equal(t, "", JoinedText(doc.Find("#a")))
	require.Equal(t, "", JoinedText(doc.Find("#missing")))
}
