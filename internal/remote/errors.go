package remote

import "errors"

// ErrNotFound is returned when the requested resource does not exist
// (HTTP 404). It is a valid terminal answer, not a failure.
var ErrNotFound = errors.New("not found")

// ErrUnavailable classifies every transport-level fault and every non-2xx,
// non-404 response. Callers test for it with errors.Is; the underlying cause
// is kept in the message only, so the classification is the whole contract.
var ErrUnavailable = errors.New("catalog service unavailable")
