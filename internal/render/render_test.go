package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"camscrape/lib/scrapers/cambridge"

	"github.com/stretchr/testify/require"
)

func sampleEntry() cambridge.Entry {
	return cambridge.Entry{
		Word:     "galaxy",
		Language: cambridge.LangEnglish,
		URL:      "https://dictionary.cambridge.org/dictionary/english/galaxy",
		Pronunciation: map[cambridge.Region]string{
			cambridge.RegionAmE: "/ˈɡæl.ək.siː/",
			cambridge.RegionBrE: "/ˈɡæl.ək.si/",
		},
		Audio: map[cambridge.Region]string{
			cambridge.RegionAmE: "https://dictionary.cambridge.org/media/english/us_pron/galaxy.mp3",
			cambridge.RegionBrE: "https://dictionary.cambridge.org/media/english/uk_pron/ukgalax.mp3",
		},
		Definitions: []string{
			"[noun] [SPACE] [A1] one of the groups of stars and other matter that make up the universe\n- Our galaxy is called the Milky Way.",
			"[adjective] [galactic] relating to a galaxy",
		},
		Image: "https://dictionary.cambridge.org/images/full/galaxy.jpg",
		Thumb: "https://dictionary.cambridge.org/images/thumb/galaxy.jpg",
	}
}

func TestJSONRoundTrip(t *testing.T) {
	entry := sampleEntry()

	out, err := JSON(entry, false)
	require.NoError(t, err)
	parsed, err := ParseJSON(out)
	require.NoError(t, err)
	require.Equal(t, entry, parsed)

	out, err = JSON(entry, true)
	require.NoError(t, err)
	parsed, err = ParseJSON(out)
	require.NoError(t, err)
	require.Equal(t, entry, parsed)
}

func TestJSONOmitsMissingFields(t *testing.T) {
	entry := cambridge.Entry{
		Word:     "galaxy",
		Language: cambridge.LangChineseSimplified,
		Pronunciation: map[cambridge.Region]string{
			cambridge.RegionAmE: "/ˈɡæl.ək.siː/",
		},
		Audio: map[cambridge.Region]string{
			cambridge.RegionAmE: "https://dictionary.cambridge.org/media/galaxy.mp3",
		},
		Definitions: []string{"[noun] a group of stars 星系"},
	}

	out, err := JSON(entry, false)
	require.NoError(t, err)

	text := string(out)
	require.NotContains(t, text, `"BrE"`)
	require.NotContains(t, text, `"BrEmp3"`)
	require.NotContains(t, text, `"image"`)
	require.NotContains(t, text, `"thumb"`)
	require.NotContains(t, text, "null")

	parsed, err := ParseJSON(out)
	require.NoError(t, err)
	require.Equal(t, entry, parsed)
}

func TestJSONAudioKeys(t *testing.T) {
	out, err := JSON(sampleEntry(), false)
	require.NoError(t, err)

	text := string(out)
	require.Contains(t, text, `"AmEmp3"`)
	require.Contains(t, text, `"BrEmp3"`)
	require.Contains(t, text, `"definitions"`)
}

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		definition string
		tags       []string
		text       string
	}{
		{
			definition: "[noun] [SPACE] one of the groups of stars",
			tags:       []string{"noun", "SPACE"},
			text:       "one of the groups of stars",
		},
		{
			definition: "no tags at all",
			tags:       nil,
			text:       "no tags at all",
		},
		{
			definition: "[noun] first line\n- example line",
			tags:       []string{"noun"},
			text:       "first line\n- example line",
		},
	}

	for _, test := range testCases {
		tags, text := splitTags(test.definition)
		require.Equal(t, test.tags, tags, test.definition)
		require.Equal(t, test.text, text, test.definition)
	}
}

func TestWriteHTMLWithStylesheet(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "galaxy.html")
	cssPath := filepath.Join(dir, "galaxy.css")

	err := WriteHTML(sampleEntry(), htmlPath, cssPath)
	require.NoError(t, err)

	document, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	text := string(document)
	require.Contains(t, text, cssPath)
	require.Contains(t, text, "galaxy")
	require.Contains(t, text, "https://dictionary.cambridge.org/images/full/galaxy.jpg")
	require.NotContains(t, text, "<style>")

	css, err := os.ReadFile(cssPath)
	require.NoError(t, err)
	require.NotEmpty(t, css)
}

func TestWriteHTMLInlineStylesheet(t *testing.T) {
	dir := t.TempDir()
	htmlPath := filepath.Join(dir, "galaxy.html")

	err := WriteHTML(sampleEntry(), htmlPath, "")
	require.NoError(t, err)

	document, err := os.ReadFile(htmlPath)
	require.NoError(t, err)
	require.Contains(t, string(document), "<style>")
	require.NotContains(t, string(document), "<link")
}

func TestWriteHTMLBadPath(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "does", "not", "exist", "galaxy.html")

	err := WriteHTML(sampleEntry(), missing, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), missing)
}

func TestTable(t *testing.T) {
	out := Table(sampleEntry())
	require.Contains(t, out, "galaxy")
	require.Contains(t, out, "def 01")
	require.Contains(t, out, "def 02")
	require.True(t, strings.Contains(out, "pron AmE"))
}
