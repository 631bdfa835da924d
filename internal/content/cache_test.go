package content

import (
	"testing"
	"time"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func courseSet(titles ...string) *RecordSet {
	rs := &RecordSet{Category: CategoryCourses}
	for _, title := range titles {
		rs.Courses = append(rs.Courses, Course{Title: title})
	}
	return rs
}

func TestCache_PutReplacesWholesale(t *testing.T) {
	cache := NewCache(nil)
	cache.Put(CategoryCourses, courseSet("a", "b"))
	cache.Put(CategoryCourses, courseSet("c"))

	entry, ok := cache.Get(CategoryCourses)
	if !ok {
		t.Fatal("entry missing")
	}
	if entry.Records.Len() != 1 || entry.Records.Courses[0].Title != "c" {
		t.Errorf("entry = %+v, want single course %q", entry.Records.Courses, "c")
	}
}

func TestCache_FreshnessIsCalendarDay(t *testing.T) {
	fetchTime := time.Date(2025, 3, 14, 23, 50, 0, 0, time.UTC)
	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"same minute", fetchTime.Add(time.Minute), true},
		{"later same day", time.Date(2025, 3, 14, 23, 59, 59, 0, time.UTC), true},
		{"just past midnight", time.Date(2025, 3, 15, 0, 0, 1, 0, time.UTC), false},
		{"next week", fetchTime.AddDate(0, 0, 7), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := fetchTime
			cache := NewCache(func() time.Time { return now })
			cache.Put(CategoryJobs, &RecordSet{Category: CategoryJobs, Jobs: []JobListing{{Title: "x"}}})

			now = tt.now
			if got := cache.IsFresh(CategoryJobs); got != tt.want {
				t.Errorf("IsFresh() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCache_FreshnessStrings(t *testing.T) {
	base := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		elapsed time.Duration
		want    string
	}{
		{"just now", 30 * time.Second, "Just now"},
		{"minutes", 5 * time.Minute, "5 minute(s) ago"},
		{"hours", 3 * time.Hour, "3 hour(s) ago"},
		{"days", 49 * time.Hour, "2 day(s) ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeAge(base, base.Add(tt.elapsed)); got != tt.want {
				t.Errorf("RelativeAge(+%v) = %q, want %q", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestCache_NeverUpdated(t *testing.T) {
	cache := NewCache(nil)
	if got := cache.Freshness(CategoryTrends); got != "Never updated" {
		t.Errorf("Freshness() = %q, want %q", got, "Never updated")
	}
}

func TestCache_ClearRemovesEntry(t *testing.T) {
	cache := NewCache(nil)
	cache.Put(CategoryCourses, courseSet("a"))
	cache.Clear(CategoryCourses)
	if _, ok := cache.Get(CategoryCourses); ok {
		t.Error("entry survived Clear()")
	}
	if cache.IsFresh(CategoryCourses) {
		t.Error("cleared entry reported fresh")
	}
}
