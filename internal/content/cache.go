package content

import (
	"fmt"
	"sync"
	"time"
)

// Entry is one cached category result. Entries are replaced wholesale on
// refresh, never mutated field by field.
type Entry struct {
	Category  Category
	Records   *RecordSet
	FetchedAt time.Time
}

// Cache holds at most one entry per category for a single session.
// Instances belong to one orchestrator; there is no process-wide cache.
type Cache struct {
	mu      sync.RWMutex
	entries map[Category]Entry
	now     func() time.Time
}

// NewCache creates an empty cache. A nil clock means time.Now.
func NewCache(now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: make(map[Category]Entry),
		now:     now,
	}
}

// Get returns the entry for a category.
func (c *Cache) Get(cat Category) (Entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.entries[cat]
	return entry, ok
}

// Put replaces the category's entry and stamps it with the current time.
func (c *Cache) Put(cat Category, records *RecordSet) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[cat] = Entry{
		Category:  cat,
		Records:   records,
		FetchedAt: c.now(),
	}
}

// Clear removes the category's entry.
func (c *Cache) Clear(cat Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, cat)
}

// IsFresh reports whether the category was fetched within the current
// calendar day. A stale entry forces at least one refresh per day.
func (c *Cache) IsFresh(cat Category) bool {
	entry, ok := c.Get(cat)
	if !ok {
		return false
	}
	return sameCalendarDay(entry.FetchedAt, c.now())
}

// Freshness returns a human-readable relative age for the category's entry,
// or "Never updated" when absent.
func (c *Cache) Freshness(cat Category) string {
	entry, ok := c.Get(cat)
	if !ok {
		return "Never updated"
	}
	return RelativeAge(entry.FetchedAt, c.now())
}

// sameCalendarDay reports whether two instants fall on the same local date.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// RelativeAge renders the elapsed time since fetchedAt as a display string.
func RelativeAge(fetchedAt, now time.Time) string {
	elapsed := now.Sub(fetchedAt)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%d minute(s) ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d hour(s) ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%d day(s) ago", int(elapsed.Hours()/24))
	}
}
