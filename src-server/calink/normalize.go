package calink

import "time"

// Every provider wants the same two instants in a different dress:
//
//   - `20060102T150405Z`    Google/Yahoo, converted to UTC
//   - `2006-01-02T15:04:05Z` Outlook web, converted to UTC
//   - `20060102T150405`     ICS local time, paired with a TZID parameter
//   - `20060102`            all-day variants of all of the above

func utcBasic(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

func utcISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}

func localBasic(t time.Time, location *time.Location) string {
	return t.In(location).Format("20060102T150405")
}

func localDate(t time.Time, location *time.Location) string {
	return t.In(location).Format("20060102")
}

func localDateISO(t time.Time, location *time.Location) string {
	return t.In(location).Format("2006-01-02")
}
