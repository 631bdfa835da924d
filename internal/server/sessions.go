package server

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/anand/career-pilot/internal/content"
	"github.com/anand/career-pilot/internal/db"
	"github.com/anand/career-pilot/internal/genai"
	"github.com/anand/career-pilot/internal/types"
)

// dbProfileSource feeds the orchestrator from the database instead of the
// remote profile API.
type dbProfileSource struct {
	store  DBClient
	userID uuid.UUID
}

// FetchProfile assembles the session profile from the account row and the
// career profile row.
func (s *dbProfileSource) FetchProfile(ctx context.Context) (*types.UserProfile, error) {
	user, err := s.store.GetUser(ctx, s.userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &ErrUserNotFound{UserID: s.userID}
	}

	profile, err := s.store.GetProfile(ctx, s.userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &db.Profile{UserID: s.userID}
	}

	return buildProfileEnvelope(user, profile).ToUserProfile(), nil
}

// buildProfileEnvelope converts database rows into the profile wire shape.
func buildProfileEnvelope(user *db.User, profile *db.Profile) *types.ProfileEnvelope {
	dob := ""
	if profile.DateOfBirth != nil && !profile.DateOfBirth.IsZero() {
		dob = profile.DateOfBirth.Format("2006-01-02")
	}
	return &types.ProfileEnvelope{
		User: types.ProfileUser{
			FirstName:   user.FirstName,
			LastName:    user.LastName,
			PhoneNumber: user.PhoneNumber,
			Email:       user.Email,
		},
		Profile: types.ProfileDetails{
			Qualification: profile.Qualification,
			DateOfBirth:   dob,
			Address:       profile.Address,
			Skills:        profile.Skills,
			Industries:    profile.Industries,
			Experience:    profile.Experience,
			Education:     profile.Education,
		},
	}
}

// SessionRegistry holds one content orchestrator per signed-in user. Entries
// are dropped when the profile changes so the next request reloads it.
type SessionRegistry struct {
	mu        sync.Mutex
	sessions  map[uuid.UUID]*content.Orchestrator
	store     DBClient
	generator genai.Client
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry(store DBClient, generator genai.Client) *SessionRegistry {
	return &SessionRegistry{
		sessions:  make(map[uuid.UUID]*content.Orchestrator),
		store:     store,
		generator: generator,
	}
}

// Get returns the user's orchestrator, creating one and loading the profile
// on first use.
func (r *SessionRegistry) Get(ctx context.Context, userID uuid.UUID) (*content.Orchestrator, error) {
	r.mu.Lock()
	orch, ok := r.sessions[userID]
	r.mu.Unlock()
	if ok {
		return orch, nil
	}

	orch = content.NewOrchestrator(&dbProfileSource{store: r.store, userID: userID}, r.generator)
	if err := orch.LoadProfile(ctx); err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	r.mu.Lock()
	// Another request may have raced us; keep the first one.
	if existing, ok := r.sessions[userID]; ok {
		orch = existing
	} else {
		r.sessions[userID] = orch
	}
	r.mu.Unlock()
	return orch, nil
}

// Drop removes the user's orchestrator, discarding its cache.
func (r *SessionRegistry) Drop(userID uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, userID)
	r.mu.Unlock()
}
