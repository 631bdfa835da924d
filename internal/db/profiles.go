package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// GetProfile retrieves the career profile for a user. Returns nil if the user
// has not filled one in yet.
func (db *DB) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	var profile Profile
	err := db.pool.QueryRow(ctx,
		`SELECT user_id, qualification, date_of_birth, address, skills, industries,
		        experience, education, updated_at
		 FROM profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.UserID, &profile.Qualification, &profile.DateOfBirth, &profile.Address,
		&profile.Skills, &profile.Industries, &profile.Experience, &profile.Education,
		&profile.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &profile, nil
}

// UpsertProfile creates or replaces the career profile for a user.
func (db *DB) UpsertProfile(ctx context.Context, userID uuid.UUID, profile *Profile) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO profiles (user_id, qualification, date_of_birth, address, skills, industries, experience, education)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (user_id) DO UPDATE SET
		   qualification = $2, date_of_birth = $3, address = $4,
		   skills = $5, industries = $6, experience = $7, education = $8, updated_at = NOW()`,
		userID, profile.Qualification, profile.DateOfBirth, profile.Address,
		profile.Skills, profile.Industries, profile.Experience, profile.Education,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}
