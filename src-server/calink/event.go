package calink

import (
	"time"
)

// Event is a single calendar event, immutable once constructed. Build one
// with NewEvent; the zero value is not usable.
type Event struct {
	title       string // required
	description string
	address     string
	startDate   time.Time // required
	endDate     time.Time // required
	tzid        string
	allDay      bool

	location *time.Location // resolved from tzid at construction
}

// EventInput carries the resolved field values an Event is built from. TZID
// is an IANA zone name; leave it blank to treat the instants as UTC.
type EventInput struct {
	Title       string
	Start       time.Time
	End         time.Time
	TZID        string
	AllDay      bool
	Description string
	Address     string
}

// Validate the input and build an Event. The end date must not precede the
// start date.
func NewEvent(input EventInput) (*Event, error) {
	switch {
	case input.Start.IsZero():
		return nil, NewInvalidEventError("start date is zero", map[string]any{
			"title": input.Title,
		})
	case input.End.IsZero():
		return nil, NewInvalidEventError("end date is zero", map[string]any{
			"title": input.Title,
		})
	case input.End.Before(input.Start):
		return nil, NewInvalidEventError("end date before start date", map[string]any{
			"title": input.Title,
			"start": input.Start,
			"end":   input.End,
		})
	}

	tzid := input.TZID
	if tzid == "" {
		tzid = "UTC"
	}
	location, err := time.LoadLocation(tzid)
	if err != nil {
		return nil, NewUnsupportedZoneError("can't load zone", map[string]any{
			"tzid": tzid,
			"err":  err,
		})
	}

	return &Event{
		title:       input.Title,
		description: input.Description,
		address:     input.Address,
		startDate:   input.Start,
		endDate:     input.End,
		tzid:        tzid,
		allDay:      input.AllDay,
		location:    location,
	}, nil
}

// Parsing date-time values the way they appear on the wire:
//
//   - `20060102T150405Z` (UTC)
//   - `20060102` (date only)
//   - `20060102T150405` and RFC 3339 without offset, wall clock in tzid
//   - RFC 3339 with offset
//
// A blank tzid means UTC.
func ParseDateTime(value string, tzid string) (time.Time, error) {
	if value == "" {
		return time.Time{}, NewInvalidEventError("date-time value is blank", nil)
	}

	// formats carrying their own zone info
	switch len(value) {
	case 16:
		if res, err := time.Parse("20060102T150405Z", value); err == nil {
			return res, nil
		}
	case 8:
		if res, err := time.Parse("20060102", value); err == nil {
			return res, nil
		}
	}
	if res, err := time.Parse(time.RFC3339, value); err == nil {
		return res, nil
	}

	location := time.UTC
	if tzid != "" {
		var err error
		if location, err = time.LoadLocation(tzid); err != nil {
			return time.Time{}, NewUnsupportedZoneError("can't load zone", map[string]any{
				"tzid": tzid,
				"err":  err,
			})
		}
	}

	// local wall-clock formats
	for _, layout := range []string{"20060102T150405", "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
		if res, err := time.ParseInLocation(layout, value, location); err == nil {
			return res, nil
		}
	}

	return time.Time{}, NewInvalidEventError("can't parse date-time value", map[string]any{
		"value": value,
		"tzid":  tzid,
	})
}

// #region Getters

func (e *Event) GetTitle() string {
	return e.title
}

func (e *Event) GetDescription() string {
	return e.description
}

func (e *Event) GetAddress() string {
	return e.address
}

func (e *Event) GetStartDate() time.Time {
	return e.startDate
}

func (e *Event) GetEndDate() time.Time {
	return e.endDate
}

func (e *Event) GetTZID() string {
	return e.tzid
}

func (e *Event) GetAllDay() bool {
	return e.allDay
}

// #endregion
