// Package testutil provides HTTP plumbing shared by the SDK's tests.
package testutil

import (
	"net/http"
	"sync"
)

// CountingTransport wraps a RoundTripper and counts how many requests pass
// through it, so tests can assert that a failed dispatch never hit the
// network.
type CountingTransport struct {
	mu    sync.Mutex
	next  http.RoundTripper
	calls int
}

// NewCountingTransport wraps next (http.DefaultTransport when nil).
func NewCountingTransport(next http.RoundTripper) *CountingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &CountingTransport{next: next}
}

// RoundTrip implements http.RoundTripper.
func (t *CountingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.calls++
	t.mu.Unlock()
	return t.next.RoundTrip(req)
}

// Calls returns the number of requests seen so far.
func (t *CountingTransport) Calls() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.calls
}
