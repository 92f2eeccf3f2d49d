package model

import (
	"calink/src-server/calink"
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type EventIDCtxKeyType string

const EventIDCtxKey EventIDCtxKeyType = "event-id"

// Event is a saved calendar event. Saving one lets the caller re-render any
// provider link for it later by id; the link engine itself never touches the
// database.
type Event struct {
	bun.BaseModel `bun:"table:events"`

	ID          string `bun:"id,pk"`         // required
	Title       string `bun:"title,notnull"` // required
	Description string `bun:"description"`
	Address     string `bun:"address"`

	StartDateUnixUTC int64  `bun:"start_date,notnull"` // required
	EndDateUnixUTC   int64  `bun:"end_date,notnull"`   // required
	Timezone         string `bun:"timezone"`
	AllDay           bool   `bun:"all_day"`

	CreatedAt int64 `bun:"created_at,notnull"`
	UpdatedAt int64 `bun:"updated_at"`
}

func (e *Event) Upsert(ctx context.Context, db bun.IDB) error {
	if db == nil {
		return fmt.Errorf("(*Event).Upsert: db is nil")
	}

	switch {
	case e.ID == "":
		return fmt.Errorf("(*Event).Upsert: event id is blank")
	case e.Title == "":
		return fmt.Errorf("(*Event).Upsert: title is blank")
	case e.StartDateUnixUTC == 0:
		return fmt.Errorf("(*Event).Upsert: start date is blank")
	case e.EndDateUnixUTC == 0:
		return fmt.Errorf("(*Event).Upsert: end date is blank")
	case e.StartDateUnixUTC > e.EndDateUnixUTC:
		return fmt.Errorf("(*Event).Upsert: start date must be before end date")
	}
	if e.Timezone != "" {
		if _, err := time.LoadLocation(e.Timezone); err != nil {
			return fmt.Errorf("(*Event).Upsert: timezone is invalid: %w", err)
		}
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().UTC().Unix()
	}

	exists, err := db.NewSelect().
		Model((*Event)(nil)).
		Where("id = ?", e.ID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("(*Event).Upsert: %w", err)
	}

	switch exists {
	case true:
		e.UpdatedAt = time.Now().UTC().Unix()
		if _, err := db.NewUpdate().
			Model(e).
			WherePK().
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Event).Upsert: %w", err)
		}
	case false:
		if _, err := db.NewInsert().
			Model(e).
			Exec(ctx); err != nil {
			return fmt.Errorf("(*Event).Upsert: %w", err)
		}
	}

	return nil
}

// Turn the stored row back into a link-engine event.
func (e *Event) ToLinkEvent() (*calink.Event, error) {
	linkEvent, err := calink.NewEvent(calink.EventInput{
		Title:       e.Title,
		Start:       time.Unix(e.StartDateUnixUTC, 0).UTC(),
		End:         time.Unix(e.EndDateUnixUTC, 0).UTC(),
		TZID:        e.Timezone,
		AllDay:      e.AllDay,
		Description: e.Description,
		Address:     e.Address,
	})
	if err != nil {
		return nil, fmt.Errorf("(*Event).ToLinkEvent: %w", err)
	}
	return linkEvent, nil
}
