package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/anand/career-pilot/internal/config"
	"github.com/anand/career-pilot/internal/db"
	"github.com/anand/career-pilot/internal/types"
)

// DBClient is the subset of database operations the server needs. It exists
// so handlers can be tested against a fake store.
type DBClient interface {
	CreateUser(ctx context.Context, firstName, phoneNumber, passwordHash string) (*db.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*db.User, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (*db.User, error)
	PhoneExists(ctx context.Context, phoneNumber string) (bool, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, firstName, lastName, email string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*db.Profile, error)
	UpsertProfile(ctx context.Context, userID uuid.UUID, profile *db.Profile) error
}

// UserService provides business logic for account operations
type UserService struct {
	db             DBClient
	passwordConfig *config.PasswordConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, passwordConfig *config.PasswordConfig) *UserService {
	return &UserService{
		db:             db,
		passwordConfig: passwordConfig,
	}
}

// convertDBUser converts db.User to types.User, excluding the password hash
func convertDBUser(dbUser *db.User) *types.User {
	if dbUser == nil {
		return nil
	}
	return &types.User{
		ID:          dbUser.ID,
		FirstName:   dbUser.FirstName,
		LastName:    dbUser.LastName,
		PhoneNumber: dbUser.PhoneNumber,
		Email:       dbUser.Email,
		CreatedAt:   dbUser.CreatedAt,
		UpdatedAt:   dbUser.UpdatedAt,
	}
}

// Register creates a new account keyed by phone number.
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	exists, err := s.db.PhoneExists(ctx, req.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check phone number: %w", err)
	}
	if exists {
		return nil, &ErrPhoneAlreadyExists{PhoneNumber: req.PhoneNumber}
	}

	passwordHash, err := s.passwordConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	dbUser, err := s.db.CreateUser(ctx, req.FirstName, req.PhoneNumber, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if req.LastName != "" || req.Email != "" {
		if err := s.db.UpdateUser(ctx, dbUser.ID, req.FirstName, req.LastName, req.Email); err != nil {
			return nil, fmt.Errorf("failed to store account details: %w", err)
		}
		dbUser.LastName = req.LastName
		dbUser.Email = req.Email
	}

	return convertDBUser(dbUser), nil
}

// Login authenticates by phone number and returns the account.
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	dbUser, err := s.db.GetUserByPhone(ctx, req.PhoneNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}

	// Same error whether the account is missing or the password is wrong.
	if dbUser == nil {
		return nil, &ErrInvalidCredentials{}
	}
	if !s.passwordConfig.VerifyPassword(req.Password, dbUser.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return convertDBUser(dbUser), nil
}

// GetAccount returns the account for a user ID.
func (s *UserService) GetAccount(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	dbUser, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if dbUser == nil {
		return nil, &ErrUserNotFound{UserID: userID}
	}
	return convertDBUser(dbUser), nil
}
