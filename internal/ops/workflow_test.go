package ops

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crashlar/quotesforever/internal/quote"
)

// TestFullWorkflow exercises the complete query-server surface:
// add quote → random → add profile → mood (match) → mood (substitute) → stats
func TestFullWorkflow(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	// 1. Add a quote
	addOut, err := AddQuote(ctx, database, AddQuoteInput{
		Text:     "Whatever you are, be a good one.",
		Author:   "Abraham Lincoln",
		Category: "Wisdom",
	})
	require.NoError(t, err)
	require.Greater(t, addOut.ID, int64(0))

	// 2. Random now has exactly one row to return
	randOut, err := Random(ctx, database)
	require.NoError(t, err)
	require.Equal(t, addOut.ID, randOut.Quote.ID)

	// 3. Record a profile
	profOut, err := AddProfile(ctx, database, AddProfileInput{
		Name:  "Visitor",
		Email: "visitor@example.com",
	})
	require.NoError(t, err)
	require.Greater(t, profOut.ID, int64(0))

	// 4. Mood match against a reachable row
	mustInsertMood(t, database, quote.MoodQuote{
		Text: "smile more", Author: "Anon", Mood: quote.MoodHappy,
		GenderPreference: quote.GenderBoth, MinAge: 15, MaxAge: 80,
		SocialLife: quote.LifeBalanced, ProfessionalLife: quote.LifeBalanced,
	})
	moodOut, err := Mood(ctx, database, MoodInput{
		Mood: "happy", Age: 30, SocialLife: "good", ProfessionalLife: "good",
	})
	require.NoError(t, err)
	require.True(t, moodOut.Matched)
	require.Equal(t, "smile more", moodOut.MoodQuote.Text)

	// 5. Mood with no matching bucket falls back to the general table
	subOut, err := Mood(ctx, database, MoodInput{
		Mood: "angry", Age: 30, SocialLife: "good", ProfessionalLife: "good",
	})
	require.NoError(t, err)
	require.False(t, subOut.Matched)
	require.NotNil(t, subOut.Substitute)
	require.Equal(t, addOut.ID, subOut.Substitute.ID)

	// 6. Stats reflect everything written above
	statsOut, err := Stats(ctx, database)
	require.NoError(t, err)
	require.Equal(t, 1, statsOut.Counts.Quotes)
	require.Equal(t, 1, statsOut.Counts.MoodQuotes)
	require.Equal(t, 1, statsOut.Counts.Users)
}
