package aircon

import "errors"

// Domain errors for the aircon package.
var (
	// ErrSensorQueryFailed is returned when the HTTP sensor query fails,
	// either at the connection level or with a non-2xx status. The query
	// is never retried and yields no partial result.
	ErrSensorQueryFailed = errors.New("aircon: sensor query failed")
)
