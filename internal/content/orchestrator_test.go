package content

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/anand/career-pilot/internal/types"
)

// fakeProfileSource returns a canned profile or error.
type fakeProfileSource struct {
	profile *types.UserProfile
	err     error
}

func (f *fakeProfileSource) FetchProfile(_ context.Context) (*types.UserProfile, error) {
	return f.profile, f.err
}

// fakeGenerator returns scripted responses and records call counts.
type fakeGenerator struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	idx := f.calls - 1
	if idx >= len(f.responses) {
		idx = len(f.responses) - 1
	}
	return f.responses[idx], nil
}

func (f *fakeGenerator) Close() error { return nil }

func fencedCourses() string {
	return "```json\n" + coursesJSON + "\n```"
}

func newTestOrchestrator(t *testing.T, gen *fakeGenerator, now func() time.Time) *Orchestrator {
	t.Helper()
	source := &fakeProfileSource{profile: testProfile()}
	o := NewOrchestrator(source, gen, WithClock(now))
	if err := o.LoadProfile(context.Background()); err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	return o
}

func TestLoadTab_CachesParsedRecords(t *testing.T) {
	gen := &fakeGenerator{responses: []string{fencedCourses()}}
	o := newTestOrchestrator(t, gen, nil)

	rs, err := o.LoadTab(context.Background(), CategoryCourses)
	if err != nil {
		t.Fatalf("LoadTab() error = %v", err)
	}
	if rs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rs.Len())
	}

	entry, ok := o.Cache().Get(CategoryCourses)
	if !ok {
		t.Fatal("cache entry missing after load")
	}
	if entry.Records.Len() != rs.Len() {
		t.Errorf("cached record count = %d, want %d", entry.Records.Len(), rs.Len())
	}
	if o.Err() != nil {
		t.Errorf("Err() = %v, want nil", o.Err())
	}
}

func TestLoadTab_WarnsOnMissingRequiredFields(t *testing.T) {
	// Records missing contract fields still load, but the violation must be
	// reported from the raw array; the typed zero values would hide it.
	gen := &fakeGenerator{responses: []string{"```json\n[{\"title\": \"Go Basics\"}]\n```"}}
	o := newTestOrchestrator(t, gen, nil)

	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	rs, err := o.LoadTab(context.Background(), CategoryCourses)
	if err != nil {
		t.Fatalf("LoadTab() error = %v", err)
	}
	if rs.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rs.Len())
	}

	logged := buf.String()
	if !strings.Contains(logged, "violates field contract") {
		t.Fatalf("expected a field contract warning, got logs:\n%s", logged)
	}
	if !strings.Contains(logged, "url is required") {
		t.Errorf("expected the missing url to be reported, got logs:\n%s", logged)
	}
}

func TestLoadTab_FreshEntrySkipsGeneration(t *testing.T) {
	gen := &fakeGenerator{responses: []string{fencedCourses()}}
	o := newTestOrchestrator(t, gen, nil)

	first, err := o.LoadTab(context.Background(), CategoryCourses)
	if err != nil {
		t.Fatalf("first LoadTab() error = %v", err)
	}
	second, err := o.LoadTab(context.Background(), CategoryCourses)
	if err != nil {
		t.Fatalf("second LoadTab() error = %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1 (fresh entry must be served from cache)", gen.calls)
	}
	if first != second {
		t.Error("second load did not return the cached record set")
	}
}

func TestLoadTab_StaleEntryRegeneratesNextDay(t *testing.T) {
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	gen := &fakeGenerator{responses: []string{fencedCourses()}}
	o := newTestOrchestrator(t, gen, func() time.Time { return now })

	if _, err := o.LoadTab(context.Background(), CategoryCourses); err != nil {
		t.Fatalf("LoadTab() error = %v", err)
	}

	now = now.AddDate(0, 0, 1)
	if _, err := o.LoadTab(context.Background(), CategoryCourses); err != nil {
		t.Fatalf("LoadTab() after day boundary error = %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2 (entry stale past calendar day)", gen.calls)
	}
}

func TestRefreshTab_AlwaysRegenerates(t *testing.T) {
	gen := &fakeGenerator{responses: []string{fencedCourses()}}
	o := newTestOrchestrator(t, gen, nil)

	if _, err := o.LoadTab(context.Background(), CategoryCourses); err != nil {
		t.Fatalf("LoadTab() error = %v", err)
	}
	if _, err := o.RefreshTab(context.Background(), CategoryCourses); err != nil {
		t.Fatalf("RefreshTab() error = %v", err)
	}
	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2 (refresh bypasses freshness)", gen.calls)
	}
}

func TestLoadTab_ProgressIsLocalAndDeterministic(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	gen := &fakeGenerator{responses: []string{"must not be called"}}
	o := newTestOrchestrator(t, gen, func() time.Time { return now })

	rs, err := o.LoadTab(context.Background(), CategoryProgress)
	if err != nil {
		t.Fatalf("LoadTab(progress) error = %v", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0 for progress", gen.calls)
	}
	if rs.Len() != 3 {
		t.Fatalf("progress records = %d, want 3", rs.Len())
	}
	if !strings.Contains(rs.Progress[1].Description, "2 skill(s)") {
		t.Errorf("skills milestone = %q, want skill count 2", rs.Progress[1].Description)
	}
	if !strings.Contains(rs.Progress[2].Description, "1 industry(ies)") {
		t.Errorf("industries milestone = %q, want industry count 1", rs.Progress[2].Description)
	}
	if rs.Progress[0].Timeframe != "14 Mar 2025" {
		t.Errorf("timeframe = %q, want %q", rs.Progress[0].Timeframe, "14 Mar 2025")
	}
}

func TestLoadTab_ParseFailurePreservesCache(t *testing.T) {
	gen := &fakeGenerator{responses: []string{fencedCourses(), "sorry, I cannot help with that"}}
	o := newTestOrchestrator(t, gen, nil)

	if _, err := o.LoadTab(context.Background(), CategoryCourses); err != nil {
		t.Fatalf("LoadTab() error = %v", err)
	}
	before, _ := o.Cache().Get(CategoryCourses)

	_, err := o.RefreshTab(context.Background(), CategoryCourses)
	if err == nil {
		t.Fatal("RefreshTab() expected parse error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Errorf("error type = %T, want *ParseError", err)
	}
	if o.Err() == nil {
		t.Error("session error not set after parse failure")
	}

	// Refresh cleared the entry before the failed load; a plain LoadTab
	// failure must leave the previous entry in place.
	gen2 := &fakeGenerator{responses: []string{"unparseable"}}
	o2 := newTestOrchestrator(t, gen2, nil)
	o2.Cache().Put(CategoryCourses, before.Records)
	// Force staleness so LoadTab attempts a regeneration.
	stale := Entry{Category: CategoryCourses, Records: before.Records, FetchedAt: time.Now().AddDate(0, 0, -2)}
	o2.Cache().mu.Lock()
	o2.Cache().entries[CategoryCourses] = stale
	o2.Cache().mu.Unlock()

	if _, err := o2.LoadTab(context.Background(), CategoryCourses); err == nil {
		t.Fatal("LoadTab() expected parse error")
	}
	after, ok := o2.Cache().Get(CategoryCourses)
	if !ok {
		t.Fatal("previous cache entry was dropped by failed parse")
	}
	if after.Records.Len() != before.Records.Len() {
		t.Errorf("cache entry changed by failed parse: %d != %d", after.Records.Len(), before.Records.Len())
	}
}

func TestLoadTab_GenerationFailureSetsSessionError(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	o := newTestOrchestrator(t, gen, nil)

	_, err := o.LoadTab(context.Background(), CategoryJobs)
	if err == nil {
		t.Fatal("LoadTab() expected error")
	}
	if o.Err() == nil {
		t.Error("session error not set")
	}
	if o.Loading() {
		t.Error("loading flag stuck after failure")
	}
	if _, ok := o.Cache().Get(CategoryJobs); ok {
		t.Error("failed generation wrote to cache")
	}
}

func TestLoadTab_NoProfileNoOps(t *testing.T) {
	gen := &fakeGenerator{responses: []string{fencedCourses()}}
	o := NewOrchestrator(&fakeProfileSource{err: errors.New("profile API down")}, gen)
	_ = o.LoadProfile(context.Background())

	_, err := o.LoadTab(context.Background(), CategoryCourses)
	if !errors.Is(err, ErrProfileNotReady) {
		t.Errorf("err = %v, want ErrProfileNotReady", err)
	}
	if gen.calls != 0 {
		t.Errorf("generator calls = %d, want 0 with no profile", gen.calls)
	}
}

func TestLoadTab_UnknownCategory(t *testing.T) {
	gen := &fakeGenerator{responses: []string{fencedCourses()}}
	o := newTestOrchestrator(t, gen, nil)

	_, err := o.LoadTab(context.Background(), Category("astrology"))
	if !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestLoadProfile_FailureSetsSessionError(t *testing.T) {
	o := NewOrchestrator(&fakeProfileSource{err: errors.New("connection refused")}, &fakeGenerator{})
	if err := o.LoadProfile(context.Background()); err == nil {
		t.Fatal("LoadProfile() expected error")
	}
	if o.Err() == nil {
		t.Error("session error not set after profile failure")
	}
	if o.Profile() != nil {
		t.Error("profile set despite failure")
	}
}

func TestFreshness_ReflectsCacheState(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)
	gen := &fakeGenerator{responses: []string{fencedCourses()}}
	o := newTestOrchestrator(t, gen, func() time.Time { return now })

	if got := o.Freshness(CategoryCourses); got != "Never updated" {
		t.Errorf("Freshness() = %q, want %q", got, "Never updated")
	}
	if _, err := o.LoadTab(context.Background(), CategoryCourses); err != nil {
		t.Fatalf("LoadTab() error = %v", err)
	}
	if got := o.Freshness(CategoryCourses); got != "Just now" {
		t.Errorf("Freshness() = %q, want %q", got, "Just now")
	}
}
