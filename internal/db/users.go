package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateUser inserts a new account and returns the stored row.
func (db *DB) CreateUser(ctx context.Context, firstName, phoneNumber, passwordHash string) (*User, error) {
	var user User
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (first_name, phone_number, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, first_name, COALESCE(last_name, ''), phone_number, COALESCE(email, ''),
		           password_hash, created_at, updated_at`,
		firstName, phoneNumber, passwordHash,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.PhoneNumber, &user.Email,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

// GetUser retrieves a user by ID. Returns nil if no row matches.
func (db *DB) GetUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	var user User
	err := db.pool.QueryRow(ctx,
		`SELECT id, first_name, COALESCE(last_name, ''), phone_number, COALESCE(email, ''),
		        password_hash, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.PhoneNumber, &user.Email,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByPhone retrieves a user by phone number. Returns nil if no row matches.
func (db *DB) GetUserByPhone(ctx context.Context, phoneNumber string) (*User, error) {
	var user User
	err := db.pool.QueryRow(ctx,
		`SELECT id, first_name, COALESCE(last_name, ''), phone_number, COALESCE(email, ''),
		        password_hash, created_at, updated_at
		 FROM users WHERE phone_number = $1`,
		phoneNumber,
	).Scan(&user.ID, &user.FirstName, &user.LastName, &user.PhoneNumber, &user.Email,
		&user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}
	return &user, nil
}

// PhoneExists reports whether an account already uses the phone number.
func (db *DB) PhoneExists(ctx context.Context, phoneNumber string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE phone_number = $1)`,
		phoneNumber,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check phone number: %w", err)
	}
	return exists, nil
}

// UpdateUser updates the mutable account fields.
func (db *DB) UpdateUser(ctx context.Context, userID uuid.UUID, firstName, lastName, email string) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE users SET first_name = $1, last_name = $2, email = $3, updated_at = NOW()
		 WHERE id = $4`,
		firstName, lastName, email, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %s", userID)
	}
	return nil
}
