// Package correlation allocates the identifiers that tie one submission to
// its eventual decision across every asynchronous stage. The same value is
// used as partition key, cache key and pub/sub topic suffix, and is opaque
// to clients.
package correlation

import "github.com/google/uuid"

type Allocator struct{}

// NewID returns a fresh globally unique correlation ID.
func (Allocator) NewID() string {
	return uuid.NewString()
}
