// Package jitter adds randomness to backoff intervals so that retrying
// clients do not stampede a recovering dependency all at once.
package jitter

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultJitter is the standard jitter factor (50%)
const DefaultJitter = 0.5

var (
	globalRand = rand.New(rand.NewSource(time.Now().UnixNano()))
	randMutex  sync.Mutex
)

// ExponentialBackoff returns base*2^attempt capped at max, with the given
// jitter factor applied in both directions.
func ExponentialBackoff(base, max time.Duration, attempt int, jitterFactor float64) time.Duration {
	backoff := base << uint(attempt)
	if backoff > max || backoff <= 0 {
		backoff = max
	}

	if jitterFactor <= 0 {
		return backoff
	}

	randMutex.Lock()
	r := globalRand.Float64()
	randMutex.Unlock()

	// Spread the delay across [backoff*(1-j), backoff*(1+j)].
	delta := float64(backoff) * jitterFactor
	jittered := float64(backoff) - delta + 2*delta*r

	result := time.Duration(jittered)
	if result <= 0 {
		result = base
	}
	if result > max {
		result = max
	}

	return result
}
