package ops

import (
	"context"
	"database/sql"

	"github.com/crashlar/quotesforever/internal/db"
	"github.com/crashlar/quotesforever/internal/quote"
)

// RandomOutput contains the result of the Random operation.
type RandomOutput struct {
	Quote *quote.Quote `json:"quote"`
}

// Random draws one quote uniformly at random from the full quotes table.
// Every call is an independent draw; recently shown quotes are not excluded.
func Random(ctx context.Context, database *sql.DB) (*RandomOutput, error) {
	q, err := db.RandomQuote(ctx, database)
	if err != nil {
		return nil, err
	}

	return &RandomOutput{Quote: q}, nil
}
