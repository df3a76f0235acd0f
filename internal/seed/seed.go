// Package seed populates the store: best-effort fetches from external
// quotation feeds, generation of the mood catalog, the bundled fallback
// list, and the bulk insert. Re-running appends rows; there is no
// deduplication or upsert.
package seed

import (
	"context"
	"database/sql"
	"math/rand"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/oklog/ulid/v2"

	"github.com/crashlar/quotesforever/internal/db"
	"github.com/crashlar/quotesforever/internal/quote"
)

// DefaultFallbackThreshold is the minimum number of fetched quotes below
// which the bundled fallback catalog is appended.
const DefaultFallbackThreshold = 50

// Options configures a seed run. Zero values select defaults.
type Options struct {
	Sources           []Source
	Client            *http.Client
	FallbackThreshold int
	Rand              *rand.Rand
	Logger            *log.Logger
}

// Report summarizes a completed seed run.
type Report struct {
	RunID        string     `json:"run_id"`
	Fetched      int        `json:"fetched"`
	FallbackUsed bool       `json:"fallback_used"`
	Inserted     int        `json:"inserted_quotes"`
	MoodInserted int        `json:"inserted_mood_quotes"`
	Counts       *db.Counts `json:"counts"`
}

// FetchAll runs every source independently, concatenating successful
// results and logging failures. One source failing never short-circuits
// the batch.
func FetchAll(ctx context.Context, client *http.Client, logger *log.Logger, sources []Source) []quote.Quote {
	var out []quote.Quote
	for _, s := range sources {
		qs, err := s.Fetch(ctx, client)
		if err != nil {
			logger.Warn("source skipped", "source", s.Name, "err", err)
			continue
		}
		logger.Info("source fetched", "source", s.Name, "quotes", len(qs))
		out = append(out, qs...)
	}
	return out
}

// Run executes one full seed pass: fetch, generate, fallback-check, commit.
// The only fatal failure is inability to write the store itself.
func Run(ctx context.Context, database *sql.DB, opts Options) (*Report, error) {
	if opts.Sources == nil {
		opts.Sources = DefaultSources()
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 10 * time.Second}
	}
	if opts.FallbackThreshold <= 0 {
		opts.FallbackThreshold = DefaultFallbackThreshold
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	runID := ulid.Make().String()
	logger := opts.Logger.With("run_id", runID)
	logger.Info("seed run starting", "sources", len(opts.Sources))

	quotes := FetchAll(ctx, opts.Client, logger, opts.Sources)
	fetched := len(quotes)

	fallbackUsed := false
	if fetched < opts.FallbackThreshold {
		logger.Info("fetched below threshold, appending fallback catalog",
			"fetched", fetched, "threshold", opts.FallbackThreshold)
		quotes = append(quotes, FallbackQuotes()...)
		fallbackUsed = true
	}

	moodQuotes := GenerateMoodCatalog(opts.Rand)

	for i := range quotes {
		if err := db.InsertQuote(ctx, database, &quotes[i]); err != nil {
			return nil, err
		}
	}
	for i := range moodQuotes {
		if err := db.InsertMoodQuote(ctx, database, &moodQuotes[i]); err != nil {
			return nil, err
		}
	}

	counts, err := db.CountRows(ctx, database)
	if err != nil {
		return nil, err
	}

	logger.Info("seed run complete",
		"quotes", len(quotes), "mood_quotes", len(moodQuotes),
		"total_quotes", counts.Quotes, "total_mood_quotes", counts.MoodQuotes)

	return &Report{
		RunID:        runID,
		Fetched:      fetched,
		FallbackUsed: fallbackUsed,
		Inserted:     len(quotes),
		MoodInserted: len(moodQuotes),
		Counts:       counts,
	}, nil
}
