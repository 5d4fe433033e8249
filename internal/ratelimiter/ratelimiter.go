package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type Config struct {
	RequestsPerTimeFrame int
	TimeFrame            time.Duration
	Enabled              bool
}

type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// TokenBucketLimiter gives every key its own bucket that refills
// RequestsPerTimeFrame tokens per TimeFrame. Idle keys are evicted.
type TokenBucketLimiter struct {
	sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
	idle    time.Duration
	now     func() time.Time
	stop    chan struct{}
}

func NewTokenBucketLimiter(requests int, window time.Duration) *TokenBucketLimiter {
	if requests <= 0 {
		requests = 1
	}
	rl := &TokenBucketLimiter{
		clients: make(map[string]*client),
		limit:   rate.Limit(float64(requests) / window.Seconds()),
		burst:   requests,
		idle:    window * 3,
		now:     time.Now,
		stop:    make(chan struct{}),
	}
	go rl.cleanup(window)
	return rl
}

func (rl *TokenBucketLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.evictIdle()
		case <-rl.stop:
			return
		}
	}
}

func (rl *TokenBucketLimiter) evictIdle() {
	rl.Lock()
	defer rl.Unlock()

	cutoff := rl.now().Add(-rl.idle)
	for key, c := range rl.clients {
		if c.lastSeen.Before(cutoff) {
			delete(rl.clients, key)
		}
	}
}

func (rl *TokenBucketLimiter) Allow(key string) (bool, time.Duration) {
	rl.Lock()
	defer rl.Unlock()

	now := rl.now()
	c, ok := rl.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now

	r := c.limiter.ReserveN(now, 1)
	if !r.OK() {
		return false, time.Second
	}
	if delay := r.DelayFrom(now); delay > 0 {
		r.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// Stop ends the eviction goroutine.
func (rl *TokenBucketLimiter) Stop() {
	close(rl.stop)
}
