// Package schedule resolves weekly class templates into concrete calendar
// occurrences. All dates are UTC midnights; time of day never participates
// in occurrence identity.
package schedule

import (
	"hash/fnv"
	"io"
	"time"
)

// Date truncates t to its calendar date in UTC.
func Date(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NextOccurrence returns the next calendar date on or after ref that falls
// on the given weekday. When ref itself falls on the weekday the result is
// ref's date, regardless of the time of day.
func NextOccurrence(weekday time.Weekday, ref time.Time) time.Time {
	day := Date(ref)
	ahead := (int(weekday) - int(day.Weekday()) + 7) % 7
	return day.AddDate(0, 0, ahead)
}

// OccurrenceKey is the stable identity of one dated occurrence of a class.
func OccurrenceKey(classID string, date time.Time) string {
	return classID + ":" + Date(date).Format("2006-01-02")
}

// LockKey maps an occurrence to a signed 64-bit key suitable for a Postgres
// advisory lock. Occurrences with different keys never contend.
func LockKey(classID string, date time.Time) int64 {
	h := fnv.New64a()
	io.WriteString(h, OccurrenceKey(classID, date))
	return int64(h.Sum64())
}
