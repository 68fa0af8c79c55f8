package utils

import (
	"time"
)

// TimestampLayout is the layout of every timestamp tracesnap emits: run
// reports, health responses and GTFS-RT sample logs all use RFC 3339 in UTC
// with whole seconds, e.g. 2023-10-03T08:00:00Z.
const TimestampLayout = time.RFC3339

// Iso8601 formats t as a report timestamp.
func Iso8601(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Iso8601Now is the report timestamp of the current instant.
func Iso8601Now() string {
	return Iso8601(time.Now())
}

// Iso8601FromUnixSeconds formats POSIX seconds, as carried by GTFS-RT
// headers and vehicle positions.
func Iso8601FromUnixSeconds(sec int64) string {
	return Iso8601(time.Unix(sec, 0))
}
