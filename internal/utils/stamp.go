package utils

import "time"

// ISOFormat matches the millisecond ISO-8601 timestamps the document store
// has always carried (Date.toISOString in the first frontend).
const ISOFormat = "2006-01-02T15:04:05.000Z"

// NowISO returns the current UTC time in document timestamp format.
func NowISO() string {
	return time.Now().UTC().Format(ISOFormat)
}

// NewID returns a time-based identifier (milliseconds since epoch). Unique
// enough for a single-writer demo deployment; no stronger guarantee.
func NewID() int64 {
	return time.Now().UnixMilli()
}

// ParseISO parses a document timestamp, accepting any RFC3339 variant.
func ParseISO(s string) (time.Time, error) {
	if t, err := time.Parse(ISOFormat, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
