package calink

import "strings"

// Yahoo! Calendar's event-creation deep link. Same hand-assembled query
// string as the Google builder; `v=60&view=d&type=20` selects the "add
// event" form.
func buildYahooLink(e *Event) string {
	var sb strings.Builder
	sb.WriteString("https://calendar.yahoo.com/?v=60&view=d&type=20")
	sb.WriteString("&ST=")
	switch e.allDay {
	case true:
		sb.WriteString(localDate(e.startDate, e.location))
	case false:
		sb.WriteString(utcBasic(e.startDate))
	}
	sb.WriteString("&ET=")
	switch e.allDay {
	case true:
		sb.WriteString(localDate(e.endDate, e.location))
	case false:
		sb.WriteString(utcBasic(e.endDate))
	}
	sb.WriteString("&TITLE=")
	sb.WriteString(escapeURL(e.title))
	if e.description != "" {
		sb.WriteString("&DESC=")
		sb.WriteString(escapeURL(e.description))
	}
	if e.address != "" {
		sb.WriteString("&in_loc=")
		sb.WriteString(escapeURL(e.address))
	}
	return sb.String()
}
