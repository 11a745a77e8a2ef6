package analysis

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrUnavailable covers transport failures and malformed/schema-violating
// responses. The two are collapsed on purpose: the service cannot tell a
// bad payload from a transient outage, and both render as "no report".
var ErrUnavailable = errors.New("analysis unavailable")
