package calink_test

import (
	"calink/src-server/calink"
	"encoding/base64"
	"strings"
	"testing"
	"time"
)

const dataURIPrefix = "data:text/calendar;charset=utf8;base64,"

func makeEvent(t *testing.T, input calink.EventInput) *calink.Event {
	t.Helper()
	event, err := calink.NewEvent(input)
	if err != nil {
		t.Fatal(err)
	}
	return event
}

func decodeDataURI(t *testing.T, link string) string {
	t.Helper()
	if !strings.HasPrefix(link, dataURIPrefix) {
		t.Fatalf("link does not start with the data URI prefix: %s", link)
	}
	body, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(link, dataURIPrefix))
	if err != nil {
		t.Fatal(err)
	}
	return string(body)
}

func berlinEvent(t *testing.T) *calink.Event {
	t.Helper()
	berlin, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Fatal(err)
	}
	return makeEvent(t, calink.EventInput{
		Title:       "title",
		Start:       time.Date(2019, 2, 24, 10, 0, 0, 0, berlin),
		End:         time.Date(2019, 2, 24, 12, 0, 0, 0, berlin),
		TZID:        "Europe/Berlin",
		Description: "description",
		Address:     "address",
	})
}

func TestGenerateIcsStructure(t *testing.T) {
	event := berlinEvent(t)

	link, err := calink.Generate(calink.ProviderIcs, event)
	if err != nil {
		t.Fatal(err)
	}
	body := decodeDataURI(t, link)

	if !strings.HasSuffix(body, "\r\n") {
		t.Error("body must end with CRLF")
	}
	lines := strings.Split(strings.TrimSuffix(body, "\r\n"), "\r\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 content lines, got %d:\n%s", len(lines), body)
	}
	if !strings.HasPrefix(lines[3], "UID:") || len(lines[3]) == len("UID:") {
		t.Fatalf("expected a non-empty UID line, got %q", lines[3])
	}
	want := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"BEGIN:VEVENT",
		lines[3],
		"SUMMARY:title",
		"DTSTART;TZID=Europe/Berlin:20190224T100000",
		"DTEND;TZID=Europe/Berlin:20190224T120000",
		"DESCRIPTION:description",
		"LOCATION:address",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for i, line := range want {
		if lines[i] != line {
			t.Errorf("line %d = %q, want %q", i, lines[i], line)
		}
	}
}

func TestGenerateIcsIdempotent(t *testing.T) {
	first, err := calink.Generate(calink.ProviderIcs, berlinEvent(t))
	if err != nil {
		t.Fatal(err)
	}
	second, err := calink.Generate(calink.ProviderIcs, berlinEvent(t))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("re-generating the same event must be byte-identical")
	}
}

func uidOf(t *testing.T, event *calink.Event) string {
	t.Helper()
	link, err := calink.Generate(calink.ProviderIcs, event)
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(decodeDataURI(t, link), "\r\n") {
		if strings.HasPrefix(line, "UID:") {
			return strings.TrimPrefix(line, "UID:")
		}
	}
	t.Fatal("no UID line")
	return ""
}

func TestIcsUIDDeterministic(t *testing.T) {
	start := time.Date(2019, 2, 24, 10, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	base := calink.EventInput{Title: "title", Start: start, End: end}

	// identical title/start/end, different optionals: same UID
	withExtras := base
	withExtras.Description = "description"
	if uidOf(t, makeEvent(t, base)) != uidOf(t, makeEvent(t, withExtras)) {
		t.Error("UID must only depend on title, start and end")
	}

	// any of the three differs: different UID
	otherTitle := base
	otherTitle.Title = "other title"
	if uidOf(t, makeEvent(t, base)) == uidOf(t, makeEvent(t, otherTitle)) {
		t.Error("different title must change the UID")
	}
	otherStart := base
	otherStart.Start = start.Add(time.Minute)
	if uidOf(t, makeEvent(t, base)) == uidOf(t, makeEvent(t, otherStart)) {
		t.Error("different start must change the UID")
	}
	otherEnd := base
	otherEnd.End = end.Add(time.Minute)
	if uidOf(t, makeEvent(t, base)) == uidOf(t, makeEvent(t, otherEnd)) {
		t.Error("different end must change the UID")
	}
}

func TestIcsOmitsEmptyOptionalFields(t *testing.T) {
	start := time.Date(2019, 2, 24, 10, 0, 0, 0, time.UTC)
	event := makeEvent(t, calink.EventInput{
		Title: "title",
		Start: start,
		End:   start.Add(2 * time.Hour),
	})

	link, err := calink.Generate(calink.ProviderIcs, event)
	if err != nil {
		t.Fatal(err)
	}
	body := decodeDataURI(t, link)
	if strings.Contains(body, "DESCRIPTION") {
		t.Error("empty description must not produce a DESCRIPTION line")
	}
	if strings.Contains(body, "LOCATION") {
		t.Error("empty address must not produce a LOCATION line")
	}
}

func TestIcsEscapesText(t *testing.T) {
	start := time.Date(2019, 2, 24, 10, 0, 0, 0, time.UTC)
	event := makeEvent(t, calink.EventInput{
		Title:       "one, two; three",
		Start:       start,
		End:         start.Add(2 * time.Hour),
		Description: "first line\nsecond line",
	})

	link, err := calink.Generate(calink.ProviderIcs, event)
	if err != nil {
		t.Fatal(err)
	}
	body := decodeDataURI(t, link)
	if !strings.Contains(body, `SUMMARY:one\, two\; three`) {
		t.Errorf("summary not escaped:\n%s", body)
	}
	if !strings.Contains(body, `DESCRIPTION:first line\nsecond line`) {
		t.Errorf("description newline not escaped:\n%s", body)
	}
}

func TestIcsFoldsLongLines(t *testing.T) {
	start := time.Date(2019, 2, 24, 10, 0, 0, 0, time.UTC)
	event := makeEvent(t, calink.EventInput{
		Title:       "title",
		Start:       start,
		End:         start.Add(2 * time.Hour),
		Description: strings.Repeat("a", 100),
	})

	link, err := calink.Generate(calink.ProviderIcs, event)
	if err != nil {
		t.Fatal(err)
	}
	body := decodeDataURI(t, link)

	// "DESCRIPTION:" plus 63 a's hits the 75-octet boundary; the remaining 37
	// a's continue on a folded line
	folded := "DESCRIPTION:" + strings.Repeat("a", 63) + "\r\n " + strings.Repeat("a", 37)
	if !strings.Contains(body, folded) {
		t.Errorf("long description not folded at 75 octets:\n%s", body)
	}
}

func TestIcsAllDay(t *testing.T) {
	start := time.Date(2019, 2, 24, 0, 0, 0, 0, time.UTC)
	event := makeEvent(t, calink.EventInput{
		Title:  "title",
		Start:  start,
		End:    start.AddDate(0, 0, 1),
		AllDay: true,
	})

	link, err := calink.Generate(calink.ProviderIcs, event)
	if err != nil {
		t.Fatal(err)
	}
	body := decodeDataURI(t, link)
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20190224") {
		t.Errorf("all-day start not rendered date-only:\n%s", body)
	}
	if !strings.Contains(body, "DTEND;VALUE=DATE:20190225") {
		t.Errorf("all-day end not rendered date-only:\n%s", body)
	}
}
