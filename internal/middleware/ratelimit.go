package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"plazas-monitor/internal/logger"
)

// TokenBucket: per-second token bucket. No queueing: a request over the budget gets 429.
type TokenBucket struct {
	capacity int
	tokens   int
	lastSec  int64
	mu       sync.Mutex
}

func (tb *TokenBucket) allow(nowSec int64) bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()
	if tb.lastSec != nowSec {
		tb.lastSec = nowSec
		tb.tokens = tb.capacity
	}
	if tb.tokens > 0 {
		tb.tokens--
		return true
	}
	return false
}

// Limiter keeps one bucket per client IP. Buckets idle for more than a minute are dropped on the next sweep.
type Limiter struct {
	qps     int
	mu      sync.Mutex
	buckets map[string]*TokenBucket
	sweep   int64
	now     func() time.Time
}

func NewLimiter(qps int) *Limiter {
	return &Limiter{qps: qps, buckets: make(map[string]*TokenBucket), now: time.Now}
}

// Allow consumes one token for key.
func (l *Limiter) Allow(key string) bool {
	sec := l.now().Unix()
	l.mu.Lock()
	if sec-l.sweep >= 60 {
		for k, b := range l.buckets {
			b.mu.Lock()
			idle := sec-b.lastSec >= 60
			b.mu.Unlock()
			if idle {
				delete(l.buckets, k)
			}
		}
		l.sweep = sec
	}
	b, ok := l.buckets[key]
	if !ok {
		b = &TokenBucket{capacity: l.qps, tokens: l.qps, lastSec: sec}
		l.buckets[key] = b
	}
	l.mu.Unlock()
	return b.allow(sec)
}

// Handler rejects requests over the per-client budget with 429.
func (l *Limiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := ClientIP(r)
		if !l.Allow(ip) {
			logger.L().Debug("rate_limited", "ip", ip, "path", r.URL.Path)
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Wrap applies rate limiting when RATE_LIMIT_ENABLED=true, RATE_LIMIT_QPS per client (default 20).
func Wrap(next http.Handler) http.Handler {
	if os.Getenv("RATE_LIMIT_ENABLED") != "true" {
		return next
	}
	qps := 20
	if s := os.Getenv("RATE_LIMIT_QPS"); s != "" {
		if n, e := strconv.Atoi(s); e == nil && n > 0 {
			qps = n
		}
	}
	logger.L().Info("rate_limit_enabled", "qps", qps)
	return NewLimiter(qps).Handler(next)
}
