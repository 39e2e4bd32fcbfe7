package cambridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"camscrape/lib/telemetry"

	"github.com/stretchr/testify/require"
)

func newFixtureServer(t testing.TB) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/dictionary/english/galaxy", func(w http.ResponseWriter, r *http.Request) {
		w.Write(readFixture(t, "galaxy_en.html"))
	})
	mux.HandleFunc("/dictionary/english/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:cambridge")
	defer cleanup()

	srv := newFixtureServer(t)
	client := NewClient(ClientOptions{BaseURL: srv.URL})

	entry, err := client.Lookup(context.Background(), "galaxy", LangEnglish)
	require.NoError(t, err)

	require.Equal(t, srv.URL+"/dictionary/english/galaxy", entry.URL)
	require.NotEmpty(t, entry.Definitions)

	// media links resolve against the host that served the page
	require.Equal(t, srv.URL+"/media/english/us_pron/galaxy.mp3", entry.Audio[RegionAmE])
	require.Equal(t, srv.URL+"/images/full/galaxy.jpg", entry.Image)
}

func TestLookupNotFound(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:cambridge")
	defer cleanup()

	srv := newFixtureServer(t)
	client := NewClient(ClientOptions{BaseURL: srv.URL})

	_, err := client.Lookup(context.Background(), "zzzqqqxyz", LangEnglish)
	require.ErrorIs(t, err, ErrNotFound)
	require.NotErrorIs(t, err, ErrNoEntryBody)
}

func TestLookupBadStatus(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:cambridge")
	defer cleanup()

	srv := newFixtureServer(t)
	client := NewClient(ClientOptions{BaseURL: srv.URL})

	_, err := client.Lookup(context.Background(), "teapot", LangEnglish)
	require.ErrorIs(t, err, ErrBadStatus)
}

func TestLookupBadArgumentsMakeNoRequest(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:cambridge")
	defer cleanup()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request: %s", r.URL)
	}))
	defer srv.Close()
	client := NewClient(ClientOptions{BaseURL: srv.URL})

	_, err := client.Lookup(context.Background(), "galaxy", Language("fr"))
	require.ErrorIs(t, err, ErrInvalidLanguage)

	_, err = client.Lookup(context.Background(), "", LangEnglish)
	require.ErrorIs(t, err, ErrEmptyWord)

	_, err = client.Lookup(context.Background(), "   ", LangEnglish)
	require.ErrorIs(t, err, ErrEmptyWord)
}

func TestParseLanguage(t *testing.T) {
	testCases := []struct {
		input string
		lang  Language
		ok    bool
	}{
		{input: "en", lang: LangEnglish, ok: true},
		{input: "en-zh-s", lang: LangChineseSimplified, ok: true},
		{input: "en-zh-t", lang: LangChineseTraditional, ok: true},
		{input: "fr", ok: false},
		{input: "", ok: false},
	}

	for _, test := range testCases {
		lang, err := ParseLanguage(test.input)
		if !test.ok {
			require.ErrorIs(t, err, ErrInvalidLanguage, test.input)
			continue
		}
		require.NoError(t, err, test.input)
		require.Equal(t, test.lang, lang)
	}
}

func TestEntryURL(t *testing.T) {
	link, err := EntryURL("", "galaxy", LangEnglish)
	require.NoError(t, err)
	require.Equal(t, "https://dictionary.cambridge.org/dictionary/english/galaxy", link)

	link, err = EntryURL("", "ice cream", LangChineseSimplified)
	require.NoError(t, err)
	require.Equal(t, "https://dictionary.cambridge.org/us/dictionary/english-chinese-simplified/ice%20cream", link)
}
