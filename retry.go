package underboss

import (
	"math"
	"math/rand"
	"net/http"
	"time"
)

// RetryConfig controls exponential backoff and attempt counts for transient
// failures (transport errors and 5xx responses).
//
// The backend contract defines no retry policy, so the default is a single
// attempt: retries only happen when the caller opts in explicitly.
type RetryConfig struct {
	MaxAttempts int
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
	// RetryPost extends retries to POST/PUT/PATCH requests. Off by default
	// since those are not idempotent.
	RetryPost bool
}

func (r RetryConfig) normalized() RetryConfig {
	cfg := r
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = 300 * time.Millisecond
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 5 * time.Second
	}
	return cfg
}

func (r RetryConfig) retriable(method string) bool {
	switch method {
	case http.MethodGet, http.MethodDelete:
		return true
	default:
		return r.RetryPost
	}
}

func (r RetryConfig) backoffDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}
	exp := attempt - 2
	base := float64(r.BaseBackoff) * math.Pow(2, float64(exp))
	if cap := float64(r.MaxBackoff); base > cap {
		base = cap
	}
	// jitter 0.5x..1.5x
	jitter := 0.5 + rand.Float64()
	d := time.Duration(base * jitter)
	if d > r.MaxBackoff {
		d = r.MaxBackoff
	}
	return d
}
