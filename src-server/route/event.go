package route

import (
	"calink/src-server/calink"
	"calink/src-server/model"
	"calink/src-server/utils"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

func Event(muxer *http.ServeMux, as *utils.AppState) {
	type EventReqBody struct {
		Title            string `json:"title"`
		Description      string `json:"description"`
		Address          string `json:"address"`
		StartDateUnixUTC int64  `json:"startDateUnixUTC"`
		EndDateUnixUTC   int64  `json:"endDateUnixUTC"`
		Timezone         string `json:"timezone"`
		AllDay           bool   `json:"allDay"`
	}

	type EventRespBody struct {
		ID               string              `json:"id"`
		Title            string              `json:"title"`
		Description      string              `json:"description"`
		Address          string              `json:"address"`
		StartDateUnixUTC int64               `json:"startDateUnixUTC"`
		EndDateUnixUTC   int64               `json:"endDateUnixUTC"`
		Timezone         string              `json:"timezone"`
		AllDay           bool                `json:"allDay"`
		Links            []calink.LinkResult `json:"links,omitempty"`
	}

	writeJSON := func(w http.ResponseWriter, status int, body any) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			slog.Warn("can't write to response", "where", "route/event.go", "err", err)
		}
	}

	getEvent := func(w http.ResponseWriter, r *http.Request) *model.Event {
		eventModel := new(model.Event)
		startTimer := time.Now()
		if err := as.BunDB.NewSelect().
			Model(eventModel).
			Where("id = ?", r.PathValue("event_id")).
			Scan(r.Context()); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "event not found", http.StatusNotFound)
				return nil
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return nil
		}
		utils.Report(as.MetricChans.DatabaseRead, float64(time.Since(startTimer).Microseconds()))
		return eventModel
	}

	// save an event; respond with its id and the full link set
	muxer.HandleFunc("PUT /event", func(w http.ResponseWriter, r *http.Request) {
		var reqBody EventReqBody
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		eventModel := model.Event{
			ID:               uuid.NewString(),
			Title:            reqBody.Title,
			Description:      reqBody.Description,
			Address:          reqBody.Address,
			StartDateUnixUTC: reqBody.StartDateUnixUTC,
			EndDateUnixUTC:   reqBody.EndDateUnixUTC,
			Timezone:         reqBody.Timezone,
			AllDay:           reqBody.AllDay,
		}

		// run the row through the link engine first so a row that can't be
		// rendered later never lands in the database
		linkEvent, err := eventModel.ToLinkEvent()
		if err != nil {
			writeLinkError(w, err)
			return
		}
		results, err := calink.GenerateAll(linkEvent)
		if err != nil {
			writeLinkError(w, err)
			return
		}

		startTimer := time.Now()
		if err := eventModel.Upsert(r.Context(), as.BunDB); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		utils.Report(as.MetricChans.DatabaseWrite, float64(time.Since(startTimer).Microseconds()))
		for _, result := range results {
			utils.Report(as.MetricChans.LinkGenerated, string(result.TypeKey))
		}

		writeJSON(w, http.StatusOK, EventRespBody{
			ID:               eventModel.ID,
			Title:            eventModel.Title,
			Description:      eventModel.Description,
			Address:          eventModel.Address,
			StartDateUnixUTC: eventModel.StartDateUnixUTC,
			EndDateUnixUTC:   eventModel.EndDateUnixUTC,
			Timezone:         eventModel.Timezone,
			AllDay:           eventModel.AllDay,
			Links:            results,
		})
	})

	// get a saved event
	muxer.HandleFunc("GET /event/{event_id}", func(w http.ResponseWriter, r *http.Request) {
		eventModel := getEvent(w, r)
		if eventModel == nil {
			return
		}
		writeJSON(w, http.StatusOK, EventRespBody{
			ID:               eventModel.ID,
			Title:            eventModel.Title,
			Description:      eventModel.Description,
			Address:          eventModel.Address,
			StartDateUnixUTC: eventModel.StartDateUnixUTC,
			EndDateUnixUTC:   eventModel.EndDateUnixUTC,
			Timezone:         eventModel.Timezone,
			AllDay:           eventModel.AllDay,
		})
	})

	// regenerate the link set for a saved event
	muxer.HandleFunc("GET /event/{event_id}/links", func(w http.ResponseWriter, r *http.Request) {
		eventModel := getEvent(w, r)
		if eventModel == nil {
			return
		}
		linkEvent, err := eventModel.ToLinkEvent()
		if err != nil {
			writeLinkError(w, err)
			return
		}
		results, err := calink.GenerateAll(linkEvent)
		if err != nil {
			writeLinkError(w, err)
			return
		}
		for _, result := range results {
			utils.Report(as.MetricChans.LinkGenerated, string(result.TypeKey))
		}
		writeJSON(w, http.StatusOK, results)
	})

	// download a saved event as an .ics file
	muxer.HandleFunc("GET /event/{event_id}/ics", func(w http.ResponseWriter, r *http.Request) {
		eventModel := getEvent(w, r)
		if eventModel == nil {
			return
		}
		linkEvent, err := eventModel.ToLinkEvent()
		if err != nil {
			writeLinkError(w, err)
			return
		}
		utils.Report(as.MetricChans.LinkGenerated, string(calink.ProviderIcs))

		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := io.WriteString(w, linkEvent.ToIcal()); err != nil {
			slog.Warn("can't write to response", "where", "route/event.go", "err", err)
		}
	})

	muxer.HandleFunc("DELETE /event/{event_id}", func(w http.ResponseWriter, r *http.Request) {
		startTimer := time.Now()
		if _, err := as.BunDB.NewDelete().
			Model((*model.Event)(nil)).
			Where("id = ?", r.PathValue("event_id")).
			Exec(r.Context()); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		utils.Report(as.MetricChans.DatabaseWrite, float64(time.Since(startTimer).Microseconds()))
		w.WriteHeader(http.StatusNoContent)
	})
}
