package calink

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// The UID is a name-based UUID over the event's identifying content, so
// re-rendering the same event yields the same UID. Two distinct events with
// identical title/start/end collide; that is the accepted trade-off for
// idempotent re-rendering.
func eventUID(e *Event) string {
	seed := fmt.Sprintf("%s|%d|%d", e.title, e.startDate.Unix(), e.endDate.Unix())
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()
}

// Marshal the event into an iCalendar text body: one VCALENDAR holding one
// VEVENT, CRLF line endings, lines folded at 75 octets. Empty DESCRIPTION
// and LOCATION are omitted entirely, never emitted as empty properties.
func (e *Event) ToIcal() string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		"UID:" + eventUID(e),
		"SUMMARY:" + escapeText(e.title),
	}
	switch e.allDay {
	case true:
		lines = append(lines,
			"DTSTART;VALUE=DATE:"+localDate(e.startDate, e.location),
			"DTEND;VALUE=DATE:"+localDate(e.endDate, e.location),
		)
	case false:
		lines = append(lines,
			"DTSTART;TZID="+e.tzid+":"+localBasic(e.startDate, e.location),
			"DTEND;TZID="+e.tzid+":"+localBasic(e.endDate, e.location),
		)
	}
	if e.description != "" {
		lines = append(lines, "DESCRIPTION:"+escapeText(e.description))
	}
	if e.address != "" {
		lines = append(lines, "LOCATION:"+escapeText(e.address))
	}
	lines = append(lines,
		"END:VEVENT",
		"END:VCALENDAR",
	)

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(foldLine(line))
		sb.WriteString("\r\n")
	}
	return sb.String()
}
