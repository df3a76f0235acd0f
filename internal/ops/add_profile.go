package ops

import (
	"context"
	"database/sql"

	"github.com/crashlar/quotesforever/internal/db"
	"github.com/crashlar/quotesforever/internal/quote"
)

// AddProfileInput contains parameters for the AddProfile operation.
type AddProfileInput struct {
	Name        string  `json:"name" validate:"required"`
	Phone       *string `json:"phone,omitempty"`
	Email       string  `json:"email" validate:"required"`
	Profession  *string `json:"profession,omitempty"`
	Feedback    *string `json:"feedback,omitempty"`
	HelpRequest *string `json:"help_request,omitempty"`
}

// AddProfileOutput contains the result of the AddProfile operation.
type AddProfileOutput struct {
	ID      int64              `json:"id"`
	Profile *quote.UserProfile `json:"profile"`
}

// AddProfile validates and inserts one user profile row. Name and email
// are required; everything else is optional free text. Profiles are an
// append-only log with no uniqueness constraint.
func AddProfile(ctx context.Context, database *sql.DB, input AddProfileInput) (*AddProfileOutput, error) {
	input.Name = quote.CleanText(input.Name)
	input.Email = quote.CleanText(input.Email)

	if err := checkInput(input); err != nil {
		return nil, err
	}

	u := &quote.UserProfile{
		Name:        input.Name,
		Phone:       input.Phone,
		Email:       input.Email,
		Profession:  input.Profession,
		Feedback:    input.Feedback,
		HelpRequest: input.HelpRequest,
	}

	if err := db.InsertUser(ctx, database, u); err != nil {
		return nil, err
	}

	return &AddProfileOutput{ID: u.ID, Profile: u}, nil
}
