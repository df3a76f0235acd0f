package quote

import "strings"

// Moods is the closed set of mood labels used for mood matching.
var Moods = []string{
	MoodHappy, MoodSad, MoodMotivated, MoodStressed,
	MoodLove, MoodCareer, MoodAngry, MoodConfused,
}

const (
	MoodHappy     = "happy"
	MoodSad       = "sad"
	MoodMotivated = "motivated"
	MoodStressed  = "stressed"
	MoodLove      = "love"
	MoodCareer    = "career"
	MoodAngry     = "angry"
	MoodConfused  = "confused"
)

// Wildcard applicability values. A stored wildcard matches any requested
// value in its dimension; a requested wildcard does NOT match any stored
// value (the filter is deliberately asymmetric).
const (
	GenderBoth       = "both"
	GenderGirl       = "girl"
	GenderBoy        = "boy"
	LifeBalanced     = "balanced"
	LifeGood         = "good"
	SocialNotGood    = "not good"
	ProfStruggling   = "struggling"
	DefaultAuthor    = "Unknown"
	SourceUserSubmit = "user-submitted"
)

// NormalizeMood lower-cases a mood label and folds the UI's
// "career-focused" spelling onto the stored "career" bucket.
func NormalizeMood(mood string) string {
	m := strings.ToLower(strings.TrimSpace(mood))
	if m == "career-focused" {
		return MoodCareer
	}
	return m
}

// ValidMood reports whether mood (already normalized) is in the closed set.
func ValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

// NormalizeGender maps the caller's gender selection to a stored value.
// A declined or empty selection matches everything via "both".
func NormalizeGender(gender string) string {
	g := strings.ToLower(strings.TrimSpace(gender))
	if g == "" || g == "prefer not to say" {
		return GenderBoth
	}
	return g
}

// NormalizeLife lower-cases a social/professional life answer.
func NormalizeLife(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// CleanText trims surrounding whitespace from a quotation body.
func CleanText(s string) string {
	return strings.TrimSpace(s)
}

// AuthorOrUnknown substitutes the default author when a source omits one.
func AuthorOrUnknown(author string) string {
	a := strings.TrimSpace(author)
	if a == "" {
		return DefaultAuthor
	}
	return a
}
