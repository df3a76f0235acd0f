package ops

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/crashlar/quotesforever/internal/db"
	"github.com/crashlar/quotesforever/internal/errors"
	"github.com/crashlar/quotesforever/internal/quote"
)

// MoodInput contains the caller's self-reported profile.
type MoodInput struct {
	Mood             string `json:"mood" validate:"required"`
	Gender           string `json:"gender"` // empty or "prefer not to say" matches everything
	Age              int    `json:"age" validate:"gt=0"`
	SocialLife       string `json:"social_life" validate:"required"`
	ProfessionalLife string `json:"professional_life" validate:"required"`
}

// MoodOutput contains the result of the Mood operation. Exactly one of
// MoodQuote and Substitute is set: Matched reports whether the profile
// filter found a row, and when it did not, Substitute carries an
// independent uniform draw from the general quotes table instead.
type MoodOutput struct {
	Matched    bool             `json:"matched"`
	MoodQuote  *quote.MoodQuote `json:"mood_quote,omitempty"`
	Substitute *quote.Quote     `json:"substitute,omitempty"`
}

// Mood selects one mood quote matching the caller's profile, or falls back
// to a general quote with an explicit "no exact match" marker.
//
// The filter is a strict boolean match followed by a uniform random draw:
// no ranking, no partial-match weighting. Stored 'both'/'balanced' values
// act as wildcards; a requested "balanced" is not a wildcard and only
// matches rows that store 'balanced'.
func Mood(ctx context.Context, database *sql.DB, input MoodInput) (*MoodOutput, error) {
	if err := checkInput(input); err != nil {
		return nil, err
	}

	filter := db.MoodFilter{
		Mood:             quote.NormalizeMood(input.Mood),
		Gender:           quote.NormalizeGender(input.Gender),
		Age:              input.Age,
		SocialLife:       quote.NormalizeLife(input.SocialLife),
		ProfessionalLife: quote.NormalizeLife(input.ProfessionalLife),
	}

	if !quote.ValidMood(filter.Mood) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown mood %q", input.Mood))
	}

	m, err := db.RandomMoodQuote(ctx, database, filter)
	if err == nil {
		return &MoodOutput{Matched: true, MoodQuote: m}, nil
	}
	if !errors.Is(err, errors.ErrNotFound) {
		return nil, err
	}

	// No match is not an error: substitute a general quote and say so.
	q, err := db.RandomQuote(ctx, database)
	if err != nil {
		return nil, err
	}

	return &MoodOutput{Matched: false, Substitute: q}, nil
}
