package db

import (
	"context"
	"database/sql"

	"github.com/crashlar/quotesforever/internal/errors"
	"github.com/crashlar/quotesforever/internal/quote"
)

// InsertQuote stores a new quote row and fills in its assigned id.
func InsertQuote(ctx context.Context, db *sql.DB, q *quote.Quote) error {
	query := `
		INSERT INTO quotes (quote_text, author, category, inspiration)
		VALUES (?, ?, ?, ?)
	`

	result, err := db.ExecContext(ctx, query,
		q.Text, q.Author, q.Category, toNullString(q.Inspiration),
	)
	if err != nil {
		return errors.NewStore(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewInternal(err)
	}
	q.ID = id

	return nil
}

// InsertMoodQuote stores a new mood quote row and fills in its assigned id.
func InsertMoodQuote(ctx context.Context, db *sql.DB, m *quote.MoodQuote) error {
	query := `
		INSERT INTO mood_quotes (
			quote_text, author, mood_category, gender_preference,
			min_age, max_age, social_life, professional_life
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.ExecContext(ctx, query,
		m.Text, m.Author, m.Mood, m.GenderPreference,
		m.MinAge, m.MaxAge, m.SocialLife, m.ProfessionalLife,
	)
	if err != nil {
		return errors.NewStore(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewInternal(err)
	}
	m.ID = id

	return nil
}

// InsertUser stores a new user profile row and fills in its assigned id.
// Repeated submissions from the same person are independent rows; there is
// no uniqueness constraint on email.
func InsertUser(ctx context.Context, db *sql.DB, u *quote.UserProfile) error {
	query := `
		INSERT INTO users (name, phone, email, profession, feedback, help_request)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := db.ExecContext(ctx, query,
		u.Name, toNullString(u.Phone), u.Email,
		toNullString(u.Profession), toNullString(u.Feedback), toNullString(u.HelpRequest),
	)
	if err != nil {
		return errors.NewStore(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return errors.NewInternal(err)
	}
	u.ID = id

	return nil
}

// RandomQuote draws one quote uniformly at random from the full table.
// Each call is an independent draw with no memory of previous draws.
func RandomQuote(ctx context.Context, db *sql.DB) (*quote.Quote, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, quote_text, author, category, inspiration, created_date
		FROM quotes ORDER BY RANDOM() LIMIT 1
	`)

	q, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("quotes table is empty")
	}
	if err != nil {
		return nil, errors.NewStore(err)
	}

	return q, nil
}

// GetQuoteByID retrieves a single quote row.
func GetQuoteByID(ctx context.Context, db *sql.DB, id int64) (*quote.Quote, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, quote_text, author, category, inspiration, created_date
		FROM quotes WHERE id = ?
	`, id)

	q, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("quote")
	}
	if err != nil {
		return nil, errors.NewStore(err)
	}

	return q, nil
}

// MoodFilter holds the normalized profile used to select mood quotes.
type MoodFilter struct {
	Mood             string
	Gender           string
	Age              int
	SocialLife       string
	ProfessionalLife string
}

// RandomMoodQuote draws one mood quote uniformly at random from the rows
// matching the filter. The stored wildcard values ('both', 'balanced')
// match any requested value; a requested 'balanced' only matches rows
// whose stored value is 'balanced'. Returns NOT_FOUND when no row matches.
func RandomMoodQuote(ctx context.Context, db *sql.DB, f MoodFilter) (*quote.MoodQuote, error) {
	row := db.QueryRowContext(ctx, `
		SELECT id, quote_text, author, mood_category, gender_preference,
			min_age, max_age, social_life, professional_life
		FROM mood_quotes
		WHERE mood_category = ?
		AND (gender_preference = ? OR gender_preference = 'both')
		AND min_age <= ? AND max_age >= ?
		AND (social_life = ? OR social_life = 'balanced')
		AND (professional_life = ? OR professional_life = 'balanced')
		ORDER BY RANDOM() LIMIT 1
	`, f.Mood, f.Gender, f.Age, f.Age, f.SocialLife, f.ProfessionalLife)

	var m quote.MoodQuote
	err := row.Scan(
		&m.ID, &m.Text, &m.Author, &m.Mood, &m.GenderPreference,
		&m.MinAge, &m.MaxAge, &m.SocialLife, &m.ProfessionalLife,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("no mood quote matches the profile")
	}
	if err != nil {
		return nil, errors.NewStore(err)
	}

	return &m, nil
}

// Counts holds row counts for the three tables.
type Counts struct {
	Quotes     int `json:"quotes"`
	MoodQuotes int `json:"mood_quotes"`
	Users      int `json:"users"`
}

// CountRows returns the row counts for all three tables.
func CountRows(ctx context.Context, db *sql.DB) (*Counts, error) {
	var c Counts
	for _, t := range []struct {
		table string
		dst   *int
	}{
		{"quotes", &c.Quotes},
		{"mood_quotes", &c.MoodQuotes},
		{"users", &c.Users},
	} {
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.table).Scan(t.dst); err != nil {
			return nil, errors.NewStore(err)
		}
	}
	return &c, nil
}

// scanQuote scans a single row into a Quote struct.
func scanQuote(row *sql.Row) (*quote.Quote, error) {
	var (
		q           quote.Quote
		inspiration sql.NullString
		createdDate sql.NullString
	)

	err := row.Scan(&q.ID, &q.Text, &q.Author, &q.Category, &inspiration, &createdDate)
	if err != nil {
		return nil, err
	}

	q.Inspiration = fromNullString(inspiration)
	if createdDate.Valid {
		q.CreatedAt = createdDate.String
	}

	return &q, nil
}

// toNullString converts a *string to sql.NullString.
func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// fromNullString converts a sql.NullString to *string.
func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}
