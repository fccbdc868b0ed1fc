// internal/store/errors.go
package store

import "errors"

// ErrUnavailable is returned by write operations when no document store
// connection is configured. Read operations degrade to empty results
// instead, so the listing and diagnostic endpoints keep answering.
var ErrUnavailable = errors.New("document store unavailable")
