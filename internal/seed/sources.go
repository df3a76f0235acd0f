package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/crashlar/quotesforever/internal/quote"
)

// maxResponseBytes caps how much of a source response is read.
const maxResponseBytes = 4 << 20

// Source describes one external quotation feed. Each source maps its
// native fields to (text, author, category, inspiration). Fetching is
// best-effort: a failing source is skipped, never fatal.
type Source struct {
	Name string
	URL  string

	// Requests is the number of GETs to issue; some feeds return one
	// quote per request. Zero means one request.
	Requests int

	// Parse converts one response body into quote rows.
	Parse func(data []byte) ([]quote.Quote, error)
}

// DefaultSources returns the built-in source registry.
func DefaultSources() []Source {
	return []Source{
		{
			Name:  "zenquotes",
			URL:   "https://zenquotes.io/api/quotes",
			Parse: parseZenQuotes,
		},
		{
			Name:     "forismatic",
			URL:      "https://api.forismatic.com/api/1.0/?method=getQuote&format=json&lang=en",
			Requests: 50,
			Parse:    parseForismatic,
		},
		{
			Name:  "typefit",
			URL:   "https://type.fit/api/quotes",
			Parse: parseTypeFit,
		},
	}
}

// Fetch issues the source's requests and concatenates the results.
// Individual request failures are skipped; an error is returned only when
// the source yielded nothing at all.
func (s Source) Fetch(ctx context.Context, client *http.Client) ([]quote.Quote, error) {
	requests := s.Requests
	if requests <= 0 {
		requests = 1
	}

	var out []quote.Quote
	var lastErr error
	for i := 0; i < requests; i++ {
		qs, err := s.fetchOnce(ctx, client)
		if err != nil {
			lastErr = err
			continue
		}
		out = append(out, qs...)
	}

	if len(out) == 0 {
		if lastErr == nil {
			lastErr = fmt.Errorf("source %s returned no quotes", s.Name)
		}
		return nil, lastErr
	}
	return out, nil
}

// fetchOnce performs a single GET against the source.
func (s Source) fetchOnce(ctx context.Context, client *http.Client) ([]quote.Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source %s returned status %d", s.Name, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}

	qs, err := s.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("source %s returned malformed payload: %w", s.Name, err)
	}

	// Drop rows whose text vanished after trimming.
	kept := qs[:0]
	for _, q := range qs {
		q.Text = quote.CleanText(q.Text)
		q.Author = quote.AuthorOrUnknown(q.Author)
		if q.Text == "" {
			continue
		}
		kept = append(kept, q)
	}
	return kept, nil
}

// parseZenQuotes parses the ZenQuotes list payload: [{"q": ..., "a": ...}].
func parseZenQuotes(data []byte) ([]quote.Quote, error) {
	var items []struct {
		Q string `json:"q"`
		A string `json:"a"`
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	tag := "zenquotes"
	out := make([]quote.Quote, 0, len(items))
	for _, item := range items {
		out = append(out, quote.Quote{
			Text:        item.Q,
			Author:      item.A,
			Category:    "Wisdom",
			Inspiration: &tag,
		})
	}
	return out, nil
}

// parseForismatic parses a single Forismatic object:
// {"quoteText": ..., "quoteAuthor": ...}. The author is frequently empty.
func parseForismatic(data []byte) ([]quote.Quote, error) {
	var item struct {
		QuoteText   string `json:"quoteText"`
		QuoteAuthor string `json:"quoteAuthor"`
	}
	if err := json.Unmarshal(data, &item); err != nil {
		return nil, err
	}

	tag := "forismatic"
	return []quote.Quote{{
		Text:        item.QuoteText,
		Author:      item.QuoteAuthor,
		Category:    "Inspirational",
		Inspiration: &tag,
	}}, nil
}

// typeFitLimit bounds how many TypeFit quotes are taken per run.
const typeFitLimit = 100

// parseTypeFit parses the TypeFit list payload: [{"text": ..., "author": ...}].
func parseTypeFit(data []byte) ([]quote.Quote, error) {
	var items []struct {
		Text   string  `json:"text"`
		Author *string `json:"author"`
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	if len(items) > typeFitLimit {
		items = items[:typeFitLimit]
	}

	tag := "typefit"
	out := make([]quote.Quote, 0, len(items))
	for _, item := range items {
		author := ""
		if item.Author != nil {
			author = *item.Author
		}
		out = append(out, quote.Quote{
			Text:        item.Text,
			Author:      author,
			Category:    "Motivation",
			Inspiration: &tag,
		})
	}
	return out, nil
}
