package ratelimit

import (
	"testing"
	"time"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EndpointConfigs: []EndpointConfig{
			{Path: "/api/cv", Method: "POST", Limit: 20, Window: time.Hour, Burst: 3},
			{Path: "/api/content/", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		},
	}
}

func TestAllow_BurstThenLimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("1.2.3.4", "/api/cv", "POST")
		if !allowed {
			t.Fatalf("request %d denied within burst", i+1)
		}
	}

	allowed, info := limiter.Allow("1.2.3.4", "/api/cv", "POST")
	if allowed {
		t.Error("request allowed past burst capacity")
	}
	if info.RetryAfter <= 0 {
		t.Errorf("RetryAfter = %v, want positive", info.RetryAfter)
	}
	if info.Limit != 20 {
		t.Errorf("Limit = %d, want 20", info.Limit)
	}
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		limiter.Allow("1.2.3.4", "/api/cv", "POST")
	}
	if allowed, _ := limiter.Allow("5.6.7.8", "/api/cv", "POST"); !allowed {
		t.Error("second client denied by first client's bucket")
	}
}

func TestAllow_Disabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		if allowed, _ := limiter.Allow("1.2.3.4", "/api/cv", "POST"); !allowed {
			t.Fatal("disabled limiter denied a request")
		}
	}
}

func TestAllow_HealthUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig())
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		if allowed, _ := limiter.Allow("1.2.3.4", "/health", "GET"); !allowed {
			t.Fatal("health check was rate limited")
		}
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := testConfig().EndpointConfigs

	tests := []struct {
		name      string
		path      string
		method    string
		wantMatch bool
		wantLimit int
	}{
		{"exact", "/api/cv", "POST", true, 20},
		{"prefix", "/api/content/courses/refresh", "POST", true, 30},
		{"wrong method", "/api/cv", "GET", false, 0},
		{"no match", "/api/auth/login", "POST", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchEndpoint(tt.path, tt.method, configs)
			if (got != nil) != tt.wantMatch {
				t.Fatalf("MatchEndpoint() = %v, wantMatch %v", got, tt.wantMatch)
			}
			if got != nil && got.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", got.Limit, tt.wantLimit)
			}
		})
	}
}

func TestMatchEndpoint_HealthSpecialCase(t *testing.T) {
	got := MatchEndpoint("/health", "GET", nil)
	if got == nil || got.Limit != 0 {
		t.Errorf("MatchEndpoint(/health) = %+v, want unlimited config", got)
	}
}
