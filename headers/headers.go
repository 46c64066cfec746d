// Package headers defines HTTP header constants shared between the Underboss
// SDK and its API, the single source of truth for custom header names.
package headers

const (
	// RequestID is the header for request correlation across client and
	// server logs.
	RequestID = "X-Underboss-Request-Id"

	// ClientName identifies the calling application, e.g. "underboss-go".
	ClientName = "X-Underboss-Client"
)
