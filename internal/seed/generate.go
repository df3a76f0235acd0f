package seed

import (
	"math/rand"

	"github.com/crashlar/quotesforever/internal/quote"
)

// genderChoices weights 'both' well above the specific values so that most
// generated rows are reachable from any profile.
var genderChoices = []string{
	quote.GenderBoth, quote.GenderBoth, quote.GenderBoth,
	quote.GenderGirl, quote.GenderBoy,
}

var socialChoices = []string{quote.LifeGood, quote.SocialNotGood, quote.LifeBalanced}

var professionalChoices = []string{quote.LifeGood, quote.ProfStruggling, quote.LifeBalanced}

// GenerateMoodCatalog expands the curated mood catalog into mood quote rows,
// independently sampling an applicability range for each entry:
// gender from the weighted choice set, min_age uniform in [15,25], max_age
// uniform in [45,80], social and professional life uniform over their sets.
// min_age <= max_age holds by construction. Deterministic only up to rng.
func GenerateMoodCatalog(rng *rand.Rand) []quote.MoodQuote {
	entries := MoodCatalog()
	out := make([]quote.MoodQuote, 0, len(entries))
	for _, e := range entries {
		out = append(out, quote.MoodQuote{
			Text:             e.Text,
			Author:           e.Author,
			Mood:             e.Mood,
			GenderPreference: genderChoices[rng.Intn(len(genderChoices))],
			MinAge:           15 + rng.Intn(11),
			MaxAge:           45 + rng.Intn(36),
			SocialLife:       socialChoices[rng.Intn(len(socialChoices))],
			ProfessionalLife: professionalChoices[rng.Intn(len(professionalChoices))],
		})
	}
	return out
}
