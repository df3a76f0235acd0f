package ops

import (
	"context"
	"database/sql"

	"github.com/crashlar/quotesforever/internal/db"
)

// StatsOutput contains row counts for the three tables.
type StatsOutput struct {
	Counts *db.Counts `json:"counts"`
}

// Stats reports the current table sizes.
func Stats(ctx context.Context, database *sql.DB) (*StatsOutput, error) {
	counts, err := db.CountRows(ctx, database)
	if err != nil {
		return nil, err
	}
	return &StatsOutput{Counts: counts}, nil
}
