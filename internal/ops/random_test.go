package ops

import (
	"context"
	"testing"

	"github.com/crashlar/quotesforever/internal/errors"
	"github.com/crashlar/quotesforever/internal/quote"
)

func TestRandom_EmptyStore(t *testing.T) {
	database := testDB(t)

	_, err := Random(context.Background(), database)
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestRandom(t *testing.T) {
	database := testDB(t)

	q := mustInsertQuote(t, database, quote.Quote{
		Text: "the one quote", Author: "A", Category: "Life",
	})

	out, err := Random(context.Background(), database)
	if err != nil {
		t.Fatalf("Random error = %v", err)
	}
	if out.Quote.ID != q.ID {
		t.Errorf("Quote.ID = %d, want %d", out.Quote.ID, q.ID)
	}
}

func TestRandom_CoversAllRows(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	ids := map[int64]bool{}
	for _, text := range []string{"a", "b", "c"} {
		q := mustInsertQuote(t, database, quote.Quote{Text: text, Author: "x", Category: "c"})
		ids[q.ID] = false
	}

	// With three rows and many independent draws, seeing all of them is
	// overwhelmingly likely; the loop bound keeps a pathological RNG from
	// hanging the test.
	for i := 0; i < 500; i++ {
		out, err := Random(ctx, database)
		if err != nil {
			t.Fatalf("Random error = %v", err)
		}
		ids[out.Quote.ID] = true
		all := true
		for _, seen := range ids {
			all = all && seen
		}
		if all {
			return
		}
	}
	t.Errorf("draws never covered all rows: %v", ids)
}

func TestStats(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	mustInsertQuote(t, database, quote.Quote{Text: "q", Author: "a", Category: "c"})
	mustInsertMood(t, database, quote.MoodQuote{
		Text: "m", Author: "a", Mood: quote.MoodHappy,
		GenderPreference: quote.GenderBoth, MinAge: 15, MaxAge: 80,
		SocialLife: quote.LifeBalanced, ProfessionalLife: quote.LifeBalanced,
	})

	out, err := Stats(ctx, database)
	if err != nil {
		t.Fatalf("Stats error = %v", err)
	}
	if out.Counts.Quotes != 1 {
		t.Errorf("Quotes = %d, want 1", out.Counts.Quotes)
	}
	if out.Counts.MoodQuotes != 1 {
		t.Errorf("MoodQuotes = %d, want 1", out.Counts.MoodQuotes)
	}
	if out.Counts.Users != 0 {
		t.Errorf("Users = %d, want 0", out.Counts.Users)
	}
}
