package ops

import (
	"context"
	"database/sql"

	"github.com/crashlar/quotesforever/internal/db"
	"github.com/crashlar/quotesforever/internal/quote"
)

// AddQuoteInput contains parameters for the AddQuote operation.
type AddQuoteInput struct {
	Text        string  `json:"quote_text" validate:"required"`
	Author      string  `json:"author" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Inspiration *string `json:"inspiration,omitempty"`
}

// AddQuoteOutput contains the result of the AddQuote operation.
type AddQuoteOutput struct {
	ID    int64        `json:"id"`
	Quote *quote.Quote `json:"quote"`
}

// AddQuote validates and inserts one user-submitted quote row.
// Text, author, and category must all be non-empty after trimming;
// otherwise a validation rejection naming the fields is returned and
// nothing is written.
func AddQuote(ctx context.Context, database *sql.DB, input AddQuoteInput) (*AddQuoteOutput, error) {
	input.Text = quote.CleanText(input.Text)
	input.Author = quote.CleanText(input.Author)
	input.Category = quote.CleanText(input.Category)

	if err := checkInput(input); err != nil {
		return nil, err
	}

	inspiration := input.Inspiration
	if inspiration == nil {
		tag := quote.SourceUserSubmit
		inspiration = &tag
	}

	q := &quote.Quote{
		Text:        input.Text,
		Author:      input.Author,
		Category:    input.Category,
		Inspiration: inspiration,
	}

	if err := db.InsertQuote(ctx, database, q); err != nil {
		return nil, err
	}

	return &AddQuoteOutput{ID: q.ID, Quote: q}, nil
}
