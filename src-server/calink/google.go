package calink

import "strings"

// Google Calendar's event-creation deep link. Parameter order is part of the
// compatibility surface, so the query string is assembled by hand instead of
// going through url.Values (which sorts keys).
func buildGoogleLink(e *Event) string {
	var sb strings.Builder
	sb.WriteString("https://calendar.google.com/calendar/render?action=TEMPLATE")
	sb.WriteString("&dates=")
	switch e.allDay {
	case true:
		sb.WriteString(localDate(e.startDate, e.location))
		sb.WriteString("/")
		sb.WriteString(localDate(e.endDate, e.location))
	case false:
		sb.WriteString(utcBasic(e.startDate))
		sb.WriteString("/")
		sb.WriteString(utcBasic(e.endDate))
	}
	sb.WriteString("&text=")
	sb.WriteString(escapeURL(e.title))
	if e.description != "" {
		sb.WriteString("&details=")
		sb.WriteString(escapeURL(e.description))
	}
	if e.address != "" {
		sb.WriteString("&location=")
		sb.WriteString(escapeURL(e.address))
	}
	return sb.String()
}
