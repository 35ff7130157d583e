package entity

import "time"

// NowUTC returns the current UTC time in epoch milliseconds, the timestamp
// unit used everywhere in the persisted record shape.
func NowUTC() int64 {
	return time.Now().
		UTC().
		UnixMilli()
}

// FormatEpoch renders an epoch-millisecond timestamp as RFC3339 for display.
func FormatEpoch(millis int64) string {
	return time.UnixMilli(millis).
		UTC().
		Format(time.RFC3339)
}
