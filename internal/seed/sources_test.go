package seed

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/crashlar/quotesforever/internal/quote"
)

func jsonServer(t *testing.T, payload string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_ZenQuotesShape(t *testing.T) {
	srv := jsonServer(t, `[{"q":"quote one","a":"Author One"},{"q":"quote two","a":"Author Two"}]`)

	s := Source{Name: "zenquotes", URL: srv.URL, Parse: parseZenQuotes}
	got, err := s.Fetch(context.Background(), srv.Client())
	if err != nil {
		t.Fatalf("Fetch error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d quotes, want 2", len(got))
	}
	if got[0].Text != "quote one" || got[0].Author != "Author One" {
		t.Errorf("got[0] = %+v", got[0])
	}
	if got[0].Category != "Wisdom" {
		t.Errorf("Category = %q, want Wisdom", got[0].Category)
	}
}

func TestFetch_ForismaticRepeatsRequests(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = io.WriteString(w, `{"quoteText":"one at a time","quoteAuthor":""}`)
	}))
	defer srv.Close()

	s := Source{Name: "forismatic", URL: srv.URL, Requests: 5, Parse: parseForismatic}
	got, err := s.Fetch(context.Background(), srv.Client())
	if err != nil {
		t.Fatalf("Fetch error = %v", err)
	}
	if calls != 5 {
		t.Errorf("calls = %d, want 5", calls)
	}
	if len(got) != 5 {
		t.Errorf("got %d quotes, want 5", len(got))
	}
	// Empty source author defaults to Unknown.
	if got[0].Author != quote.DefaultAuthor {
		t.Errorf("Author = %q, want %q", got[0].Author, quote.DefaultAuthor)
	}
	if got[0].Category != "Inspirational" {
		t.Errorf("Category = %q, want Inspirational", got[0].Category)
	}
}

func TestFetch_TypeFitLimitAndNullAuthors(t *testing.T) {
	// Build a payload larger than the per-run cap, with a null author.
	payload := `[{"text":"first","author":null}`
	for i := 1; i < typeFitLimit+20; i++ {
		payload += `,{"text":"more","author":"Someone"}`
	}
	payload += `]`
	srv := jsonServer(t, payload)

	s := Source{Name: "typefit", URL: srv.URL, Parse: parseTypeFit}
	got, err := s.Fetch(context.Background(), srv.Client())
	if err != nil {
		t.Fatalf("Fetch error = %v", err)
	}
	if len(got) != typeFitLimit {
		t.Errorf("got %d quotes, want the cap %d", len(got), typeFitLimit)
	}
	if got[0].Author != quote.DefaultAuthor {
		t.Errorf("null author = %q, want %q", got[0].Author, quote.DefaultAuthor)
	}
	if got[0].Category != "Motivation" {
		t.Errorf("Category = %q, want Motivation", got[0].Category)
	}
}

func TestFetch_DropsEmptyTextRows(t *testing.T) {
	srv := jsonServer(t, `[{"q":"   ","a":"Ghost"},{"q":"kept","a":"Real"}]`)

	s := Source{Name: "zenquotes", URL: srv.URL, Parse: parseZenQuotes}
	got, err := s.Fetch(context.Background(), srv.Client())
	if err != nil {
		t.Fatalf("Fetch error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d quotes, want 1 (blank row dropped)", len(got))
	}
	if got[0].Text != "kept" {
		t.Errorf("Text = %q, want kept", got[0].Text)
	}
}

func TestFetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := Source{Name: "broken", URL: srv.URL, Parse: parseZenQuotes}
	if _, err := s.Fetch(context.Background(), srv.Client()); err == nil {
		t.Error("Fetch should fail when every request errors")
	}
}

func TestFetch_MalformedPayload(t *testing.T) {
	srv := jsonServer(t, `{"not":"a list"}`)

	s := Source{Name: "zenquotes", URL: srv.URL, Parse: parseZenQuotes}
	if _, err := s.Fetch(context.Background(), srv.Client()); err == nil {
		t.Error("Fetch should fail on a malformed payload")
	}
}

func TestFetchAll_FailingSourceIsSkipped(t *testing.T) {
	good := jsonServer(t, `[{"q":"survivor","a":"A"}]`)
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer bad.Close()

	logger := log.New(io.Discard)
	sources := []Source{
		{Name: "bad", URL: bad.URL, Parse: parseZenQuotes},
		{Name: "good", URL: good.URL, Parse: parseZenQuotes},
	}

	got := FetchAll(context.Background(), good.Client(), logger, sources)
	if len(got) != 1 {
		t.Fatalf("got %d quotes, want 1 from the surviving source", len(got))
	}
	if got[0].Text != "survivor" {
		t.Errorf("Text = %q, want survivor", got[0].Text)
	}
}
