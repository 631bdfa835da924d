package types

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest represents the request to create a new account.
type RegisterRequest struct {
	FirstName   string `json:"first_name" validate:"required,min=1"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number" validate:"required,min=7"`
	Email       string `json:"email" validate:"omitempty,email"`
	Password    string `json:"password" validate:"required,min=8"`
}

// LoginRequest represents the login request. Accounts log in by phone number.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

// User represents an account for API responses.
type User struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AuthResponse represents the login/register response with the bearer token.
type AuthResponse struct {
	User   *User  `json:"user"`
	Access string `json:"access"`
}

// UpdateProfileRequest represents a profile upsert.
type UpdateProfileRequest struct {
	Qualification string            `json:"qualification" validate:"required"`
	DateOfBirth   string            `json:"date_of_birth"`
	Address       string            `json:"address"`
	Skills        []string          `json:"skills"`
	Industries    []string          `json:"industries"`
	Experience    []ExperienceEntry `json:"experience,omitempty"`
	Education     []EducationEntry  `json:"education,omitempty"`
}
