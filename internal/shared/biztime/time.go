// Package biztime centralises time handling. Storage and transport are UTC,
// persisted as Unix milliseconds.
package biztime

import "time"

// NowUTC returns current time in UTC truncated to millisecond precision, the
// resolution timestamps survive a database round trip with.
func NowUTC() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// ToMillis converts t to Unix milliseconds.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts Unix milliseconds to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// OptionalToMillis converts an optional time, keeping nil.
func OptionalToMillis(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// OptionalFromMillis converts optional milliseconds, keeping nil.
func OptionalFromMillis(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := FromMillis(*ms)
	return &t
}

// NormalizeUTC converts t to UTC at millisecond precision, substituting now
// for the zero time.
func NormalizeUTC(t time.Time) time.Time {
	if t.IsZero() {
		return NowUTC()
	}
	return t.UTC().Truncate(time.Millisecond)
}
