package api

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// loginLimiter throttles credential checks per client IP so password
// guessing stays slow even with many accounts.
type loginLimiter struct {
	mu       sync.Mutex
	visitors map[string]*loginVisitor
}

type loginVisitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

const (
	loginAttemptsPerSecond = 1
	loginAttemptsBurst     = 5
	loginVisitorIdleTTL    = 10 * time.Minute
)

func newLoginLimiter() *loginLimiter {
	return &loginLimiter{visitors: make(map[string]*loginVisitor)}
}

func (limiter *loginLimiter) allow(ip string) bool {
	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := time.Now()
	limiter.evictIdleLocked(now)

	visitor, exists := limiter.visitors[ip]
	if !exists {
		visitor = &loginVisitor{limiter: rate.NewLimiter(loginAttemptsPerSecond, loginAttemptsBurst)}
		limiter.visitors[ip] = visitor
	}
	visitor.lastSeen = now
	return visitor.limiter.Allow()
}

func (limiter *loginLimiter) evictIdleLocked(now time.Time) {
	for ip, visitor := range limiter.visitors {
		if now.Sub(visitor.lastSeen) > loginVisitorIdleTTL {
			delete(limiter.visitors, ip)
		}
	}
}
