package server

import "testing"

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	limiter := newIPRateLimiter(60, 5)
	for i := 0; i < 5; i++ {
		if !limiter.allow("10.0.0.1") {
			t.Fatalf("request %d should have been allowed", i)
		}
	}
	if limiter.allow("10.0.0.1") {
		t.Error("request over burst should have been rejected")
	}
}

func TestRateLimiterIsolatesIPs(t *testing.T) {
	limiter := newIPRateLimiter(60, 2)
	limiter.allow("10.0.0.1")
	limiter.allow("10.0.0.1")
	if limiter.allow("10.0.0.1") {
		t.Fatal("first IP should be throttled")
	}
	if !limiter.allow("10.0.0.2") {
		t.Error("second IP should be unaffected")
	}
}
