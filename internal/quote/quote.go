// Package quote defines the domain types shared by the seeder and the
// query server: general quotations, mood-annotated quotations, and
// user profile records.
package quote

// Quote is a general quotation stored in the quotes table.
type Quote struct {
	ID          int64   `json:"id"`
	Text        string  `json:"quote_text"`
	Author      string  `json:"author"`
	Category    string  `json:"category"`
	Inspiration *string `json:"inspiration,omitempty"` // provenance tag or submitter context
	CreatedAt   string  `json:"created_date,omitempty"`
}

// MoodQuote is a quotation annotated for demographic/mood matching.
// Rows are produced only by the seeder's generation step.
type MoodQuote struct {
	ID               int64  `json:"id"`
	Text             string `json:"quote_text"`
	Author           string `json:"author"`
	Mood             string `json:"mood_category"`
	GenderPreference string `json:"gender_preference"`
	MinAge           int    `json:"min_age"`
	MaxAge           int    `json:"max_age"`
	SocialLife       string `json:"social_life"`
	ProfessionalLife string `json:"professional_life"`
}

// UserProfile is a self-reported identity plus free-text commentary.
// It has no relationship to quote rows; it is a standalone log.
type UserProfile struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Phone       *string `json:"phone,omitempty"`
	Email       string  `json:"email"`
	Profession  *string `json:"profession,omitempty"`
	Feedback    *string `json:"feedback,omitempty"`
	HelpRequest *string `json:"help_request,omitempty"`
	CreatedAt   string  `json:"created_date,omitempty"`
}
