package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/anand/career-pilot/internal/genai"
	"github.com/anand/career-pilot/internal/schemas"
	"github.com/anand/career-pilot/internal/types"
)

// ErrProfileNotReady is returned while the session has no loaded profile.
// All content operations no-op until the profile loads.
var ErrProfileNotReady = errors.New("profile not loaded")

// ErrUnknownCategory is returned for tab names without a content contract.
var ErrUnknownCategory = errors.New("unknown content category")

// ProfileSource fetches the session's user profile.
type ProfileSource interface {
	FetchProfile(ctx context.Context) (*types.UserProfile, error)
}

// Orchestrator owns one session's content state: the loaded profile, the
// per-category cache, and the session error. One instance per authenticated
// session; its lifecycle is tied to authentication state.
//
// Concurrent loads of the same category are not serialized: both run and the
// last cache write wins. That race is accepted, mirroring tab-switch behavior.
type Orchestrator struct {
	profiles  ProfileSource
	generator genai.Client
	cache     *Cache
	now       func() time.Time

	mu      sync.RWMutex
	profile *types.UserProfile
	loading bool
	lastErr error
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock overrides the orchestrator's clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// NewOrchestrator creates a session orchestrator.
func NewOrchestrator(profiles ProfileSource, generator genai.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		profiles:  profiles,
		generator: generator,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.cache = NewCache(o.now)
	return o
}

// LoadProfile fetches the user profile once for the session. On failure the
// session error is set and the profile stays nil; content operations no-op
// until a later LoadProfile succeeds.
func (o *Orchestrator) LoadProfile(ctx context.Context) error {
	profile, err := o.profiles.FetchProfile(ctx)

	o.mu.Lock()
	defer o.mu.Unlock()
	if err != nil {
		o.lastErr = fmt.Errorf("failed to load profile: %w", err)
		return o.lastErr
	}
	profile.Normalize()
	o.profile = profile
	o.lastErr = nil
	return nil
}

// Profile returns the session profile, or nil before a successful load.
func (o *Orchestrator) Profile() *types.UserProfile {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.profile
}

// Loading reports whether a generation attempt sequence is in flight.
func (o *Orchestrator) Loading() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.loading
}

// Err returns the session error state, or nil.
func (o *Orchestrator) Err() error {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.lastErr
}

// Cache exposes the session cache for freshness queries.
func (o *Orchestrator) Cache() *Cache {
	return o.cache
}

// Freshness returns the relative age of a category's cached content.
func (o *Orchestrator) Freshness(cat Category) string {
	return o.cache.Freshness(cat)
}

// LoadTab returns the category's records, generating them only when no fresh
// cache entry exists. A failed generation or parse leaves any previous entry
// untouched and sets the session error.
func (o *Orchestrator) LoadTab(ctx context.Context, cat Category) (*RecordSet, error) {
	if !cat.Known() {
		return nil, ErrUnknownCategory
	}
	if o.Profile() == nil {
		return nil, ErrProfileNotReady
	}

	if o.cache.IsFresh(cat) {
		entry, _ := o.cache.Get(cat)
		return entry.Records, nil
	}

	return o.loadTab(ctx, cat)
}

// RefreshTab clears the category's cache entry and reloads it, bypassing the
// freshness check.
func (o *Orchestrator) RefreshTab(ctx context.Context, cat Category) (*RecordSet, error) {
	if !cat.Known() {
		return nil, ErrUnknownCategory
	}
	if o.Profile() == nil {
		return nil, ErrProfileNotReady
	}

	o.cache.Clear(cat)
	return o.loadTab(ctx, cat)
}

// loadTab performs the generate/parse/cache sequence for a category.
func (o *Orchestrator) loadTab(ctx context.Context, cat Category) (*RecordSet, error) {
	profile := o.Profile()

	if cat.Local() {
		records := BuildProgress(profile, o.now())
		o.cache.Put(cat, records)
		return records, nil
	}

	prompt := BuildPrompt(cat, profile, o.cache)
	if prompt == "" {
		return nil, ErrUnknownCategory
	}

	o.setLoading(true)
	o.setErr(nil)
	defer o.setLoading(false)

	text, err := o.generator.GenerateContent(ctx, prompt)
	if err != nil {
		genErr := fmt.Errorf("failed to generate %s content: %w", cat, err)
		o.setErr(genErr)
		return nil, genErr
	}

	records, err := ParseRecords(cat, text)
	if err != nil {
		o.setErr(err)
		return nil, err
	}
	if records.Len() == 0 {
		emptyErr := &ParseError{Category: cat, Cause: errors.New("no records in generated content")}
		o.setErr(emptyErr)
		return nil, emptyErr
	}

	o.warnOnSchemaViolations(cat, records)
	o.cache.Put(cat, records)
	return records, nil
}

// warnOnSchemaViolations runs advisory schema validation on parsed records.
// Violations never block caching or display. The raw candidate is preferred
// over re-marshaling, which would fill absent fields with zero values and
// mask required-field violations.
func (o *Orchestrator) warnOnSchemaViolations(cat Category, records *RecordSet) {
	data := []byte(records.Raw)
	if len(data) == 0 {
		var err error
		data, err = json.Marshal(records.Items())
		if err != nil {
			return
		}
	}
	warnings, err := schemas.Validate(string(cat), string(data))
	if err != nil {
		log.Printf("[content] schema load failed for %s: %v", cat, err)
		return
	}
	for _, w := range warnings {
		log.Printf("[content] %s record violates field contract: %s", cat, w)
	}
}

func (o *Orchestrator) setLoading(v bool) {
	o.mu.Lock()
	o.loading = v
	o.mu.Unlock()
}

func (o *Orchestrator) setErr(err error) {
	o.mu.Lock()
	o.lastErr = err
	o.mu.Unlock()
}
