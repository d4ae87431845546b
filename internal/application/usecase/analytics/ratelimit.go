// Package analytics contains the analytics aggregation use cases.
package analytics

import "strings"

// rateLimitMarkers are the substrings the datastore uses to signal a
// throttled request. Matching is done on the error message because the
// condition arrives as an opaque error from the client library.
var rateLimitMarkers = []string{
	"rate-limited",
	"rate limit",
}

// IsRateLimited reports whether the error carries a rate-limit marker.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
