package cambridge

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"camscrape/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/cambridge")

const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

type Client struct {
	http *resty.Client
	base string
}

type ClientOptions struct {
	// BaseURL overrides the dictionary site root, mainly for tests.
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

func NewClient(opts ClientOptions) Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 30
	}

	client := resty.New()
	if opts.BaseURL == DefaultBaseURL {
		// the real site sits behind bot protection; test servers don't
		client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	}
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)

	telemetry.InstrumentResty(client, "scrapers/cambridge/http")

	return Client{
		http: client,
		base: strings.TrimSuffix(opts.BaseURL, "/") + "/",
	}
}

// Fetch performs the single GET against the entry page and returns the
// raw markup along with the URL it was fetched from. There are no
// retries: one lookup is one request.
func (c Client) Fetch(ctx context.Context, word string, lang Language) ([]byte, string, error) {
	ctx, span := tracer.Start(ctx, "client:Fetch")
	defer span.End()

	link, err := EntryURL(c.base, word, lang)
	if err != nil {
		span.SetStatus(codes.Error, "invalid lookup arguments")
		return nil, "", err
	}

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch entry page")
		return nil, link, fmt.Errorf("fetch %s: %w", link, err)
	}

	switch res.StatusCode() {
	case http.StatusOK:
		return res.Body(), link, nil
	case http.StatusNotFound:
		span.SetStatus(codes.Error, "word not in dictionary")
		return nil, link, fmt.Errorf("%q: %w", word, ErrNotFound)
	default:
		span.SetStatus(codes.Error, "unexpected status")
		return nil, link, fmt.Errorf("%w: %d", ErrBadStatus, res.StatusCode())
	}
}

// Lookup fetches the entry page for a word and extracts it into an
// Entry.
func (c Client) Lookup(ctx context.Context, word string, lang Language) (Entry, error) {
	ctx, span := tracer.Start(ctx, "client:Lookup")
	defer span.End()

	markup, link, err := c.Fetch(ctx, word, lang)
	if err != nil {
		return Entry{}, err
	}

	entry, err := extract(markup, word, lang, c.base)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract entry")
		return Entry{}, err
	}
	entry.URL = link
	return entry, nil
}
