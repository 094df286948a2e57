package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/epidemiccare-server/internal/domain"
)

// clientRateLimiter applies a per-client token bucket to API requests,
// keyed by client IP. Idle client buckets are reaped periodically.
type clientRateLimiter struct {
	logger *logrus.Logger
	limit  rate.Limit
	burst  int

	mu      sync.Mutex
	clients map[string]*clientBucket
}

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// newClientRateLimiter creates a rate limiter allowing rps requests per
// second with the given burst per client.
func newClientRateLimiter(logger *logrus.Logger, rps float64, burst int) *clientRateLimiter {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	rl := &clientRateLimiter{
		logger:  logger,
		limit:   rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*clientBucket),
	}

	go rl.startCleanupRoutine()

	return rl
}

// allow reports whether a request from clientID fits its bucket.
func (rl *clientRateLimiter) allow(clientID string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	bucket, ok := rl.clients[clientID]
	if !ok {
		bucket = &clientBucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientID] = bucket
	}
	bucket.lastSeen = time.Now()

	return bucket.limiter.Allow()
}

// middleware rejects over-limit requests with 429.
func (rl *clientRateLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID := c.ClientIP()
		if !rl.allow(clientID) {
			rl.logger.WithField("client", clientID).Warn("Rate limit exceeded")
			requestID := c.GetString("request_id")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": domain.NewAPIError(domain.ErrRateLimit, "too many requests", "", requestID),
			})
			return
		}
		c.Next()
	}
}

// startCleanupRoutine drops buckets for clients idle beyond ten minutes.
func (rl *clientRateLimiter) startCleanupRoutine() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		rl.mu.Lock()
		for id, bucket := range rl.clients {
			if bucket.lastSeen.Before(cutoff) {
				delete(rl.clients, id)
			}
		}
		rl.mu.Unlock()
	}
}
