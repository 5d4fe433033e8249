package ratelimiter

import (
	"testing"
	"time"
)

func TestTokenBucketLimiter(t *testing.T) {
	rl := NewTokenBucketLimiter(3, time.Minute)
	defer rl.Stop()

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	for i := 0; i < 3; i++ {
		if ok, _ := rl.Allow("10.0.0.1"); !ok {
			t.Fatalf("request %d should pass", i+1)
		}
	}

	ok, retry := rl.Allow("10.0.0.1")
	if ok || retry <= 0 {
		t.Fatalf("fourth request: ok=%v retry=%v", ok, retry)
	}

	if ok, _ := rl.Allow("10.0.0.2"); !ok {
		t.Fatal("other clients have their own bucket")
	}

	clock = clock.Add(30 * time.Second)
	if ok, _ := rl.Allow("10.0.0.1"); !ok {
		t.Fatal("a token should have been refilled after half the window")
	}
}

func TestEvictIdle(t *testing.T) {
	rl := NewTokenBucketLimiter(1, time.Minute)
	defer rl.Stop()

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	rl.Allow("a")
	clock = clock.Add(5 * time.Minute)
	rl.Allow("b")
	rl.evictIdle()

	rl.Lock()
	defer rl.Unlock()
	if _, ok := rl.clients["a"]; ok {
		t.Fatal("idle client a was not evicted")
	}
	if _, ok := rl.clients["b"]; !ok {
		t.Fatal("active client b was evicted")
	}
}
