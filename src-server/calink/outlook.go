package calink

import "strings"

// Outlook.com's compose deep link. Unlike Google and Yahoo this one wants
// extended ISO 8601 date-times.
func buildWebOutlookLink(e *Event) string {
	var sb strings.Builder
	sb.WriteString("https://outlook.live.com/calendar/deeplink/compose?path=/calendar/action/compose&rru=addevent")
	sb.WriteString("&startdt=")
	switch e.allDay {
	case true:
		sb.WriteString(localDateISO(e.startDate, e.location))
	case false:
		sb.WriteString(utcISO(e.startDate))
	}
	sb.WriteString("&enddt=")
	switch e.allDay {
	case true:
		sb.WriteString(localDateISO(e.endDate, e.location))
	case false:
		sb.WriteString(utcISO(e.endDate))
	}
	sb.WriteString("&subject=")
	sb.WriteString(escapeURL(e.title))
	if e.description != "" {
		sb.WriteString("&body=")
		sb.WriteString(escapeURL(e.description))
	}
	if e.address != "" {
		sb.WriteString("&location=")
		sb.WriteString(escapeURL(e.address))
	}
	return sb.String()
}
