package model_test

import (
	"calink/src-server/model"
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	db, err := sql.Open(sqliteshim.ShimName, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	bundb := bun.NewDB(db, sqlitedialect.New())
	if err := model.CreateSchema(bundb); err != nil {
		t.Fatal(err)
	}
	return bundb
}

func TestEvent(t *testing.T) {
	bundb := newTestDB(t)

	start := time.Date(2019, 2, 24, 10, 0, 0, 0, time.UTC)
	eventModel := model.Event{
		ID:               uuid.NewString(),
		Title:            "title",
		Description:      "description",
		Address:          "address",
		StartDateUnixUTC: start.Unix(),
		EndDateUnixUTC:   start.Add(2 * time.Hour).Unix(),
		Timezone:         "Europe/Berlin",
	}

	// case: insert and read back
	func() {
		if err := eventModel.Upsert(context.Background(), bundb); err != nil {
			t.Fatal(err)
		}
		eventModelTest := new(model.Event)
		if err := bundb.NewSelect().
			Model(eventModelTest).
			Where("id = ?", eventModel.ID).
			Scan(context.Background()); err != nil {
			t.Fatal(err)
		}
		if eventModelTest.Title != eventModel.Title {
			t.Error("title not persisted")
		}
		if eventModelTest.CreatedAt == 0 {
			t.Error("created_at not set on insert")
		}
	}()

	// case: upsert updates in place
	func() {
		eventModel.Title = "new title"
		if err := eventModel.Upsert(context.Background(), bundb); err != nil {
			t.Fatal(err)
		}
		count, err := bundb.NewSelect().
			Model((*model.Event)(nil)).
			Count(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Error("upsert must not duplicate the row", count)
		}
		if eventModel.UpdatedAt == 0 {
			t.Error("updated_at not set on update")
		}
	}()

	// case: stored row renders links again
	func() {
		linkEvent, err := eventModel.ToLinkEvent()
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(linkEvent.ToIcal(), "BEGIN:VCALENDAR\r\n") {
			t.Error("stored event does not render to an iCalendar body")
		}
	}()

	// case: delete
	func() {
		if _, err := bundb.NewDelete().
			Model((*model.Event)(nil)).
			Where("id = ?", eventModel.ID).
			Exec(context.Background()); err != nil {
			t.Fatal(err)
		}
		count, err := bundb.NewSelect().
			Model((*model.Event)(nil)).
			Count(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if count != 0 {
			t.Error("event should not exist", count)
		}
	}()
}

func TestEventUpsertValidation(t *testing.T) {
	bundb := newTestDB(t)
	start := time.Date(2019, 2, 24, 10, 0, 0, 0, time.UTC)

	// case: end before start
	func() {
		eventModel := model.Event{
			ID:               uuid.NewString(),
			Title:            "title",
			StartDateUnixUTC: start.Unix(),
			EndDateUnixUTC:   start.Add(-time.Hour).Unix(),
		}
		if err := eventModel.Upsert(context.Background(), bundb); err == nil {
			t.Error("expected an error for end before start")
		}
	}()

	// case: blank title
	func() {
		eventModel := model.Event{
			ID:               uuid.NewString(),
			StartDateUnixUTC: start.Unix(),
			EndDateUnixUTC:   start.Add(time.Hour).Unix(),
		}
		if err := eventModel.Upsert(context.Background(), bundb); err == nil {
			t.Error("expected an error for a blank title")
		}
	}()

	// case: bogus timezone
	func() {
		eventModel := model.Event{
			ID:               uuid.NewString(),
			Title:            "title",
			StartDateUnixUTC: start.Unix(),
			EndDateUnixUTC:   start.Add(time.Hour).Unix(),
			Timezone:         "Mars/Olympus_Mons",
		}
		if err := eventModel.Upsert(context.Background(), bundb); err == nil {
			t.Error("expected an error for an unknown timezone")
		}
	}()
}
