package calink

import "encoding/base64"

// Wrap an iCalendar body into a data: URI the browser downloads as an .ics
// file. Standard base64, no line breaks in the payload.
func packDataURI(body string) string {
	return "data:text/calendar;charset=utf8;base64," + base64.StdEncoding.EncodeToString([]byte(body))
}
