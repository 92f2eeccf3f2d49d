package route

import (
	"calink/src-server/calink"
	"calink/src-server/utils"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Build a link-engine event from query parameters.
//
//   - `title`, `description`, `address`: plain strings
//   - `start`, `end`: any layout ParseDateTime accepts, or natural language
//     ("tomorrow 10am") as a fallback
//   - `tz`: IANA zone name, default from the TIMEZONE env
//   - `allDay`: "true" to render date-only values
//   - `natural`: alternative to start/end/title, e.g. "lunch with Bob
//     tomorrow at noon"; the matched date part becomes the start (one hour
//     duration), the rest becomes the title
func eventFromQuery(as *utils.AppState, r *http.Request) (*calink.Event, error) {
	query := r.URL.Query()
	tzid := query.Get("tz")
	if tzid == "" {
		tzid = as.Config.GetLocationName()
	}

	title := query.Get("title")
	var startDate, endDate time.Time

	if natural := query.Get("natural"); natural != "" && query.Get("start") == "" {
		result, err := as.When.Parse(natural, time.Now().In(as.Config.GetLocation()))
		if err != nil || result == nil {
			return nil, calink.NewInvalidEventError("can't parse natural text", map[string]any{
				"text": natural,
				"err":  err,
			})
		}
		startDate = result.Time
		endDate = startDate.Add(time.Hour)
		if title == "" {
			title = utils.CleanupString(strings.Replace(natural, result.Text, "", 1))
		}
	} else {
		var err error
		if startDate, err = parseDateParam(as, query.Get("start"), tzid); err != nil {
			return nil, err
		}
		if endDate, err = parseDateParam(as, query.Get("end"), tzid); err != nil {
			return nil, err
		}
	}

	return calink.NewEvent(calink.EventInput{
		Title:       title,
		Start:       startDate,
		End:         endDate,
		TZID:        tzid,
		AllDay:      query.Get("allDay") == "true",
		Description: query.Get("description"),
		Address:     query.Get("address"),
	})
}

func parseDateParam(as *utils.AppState, value string, tzid string) (time.Time, error) {
	parsed, err := calink.ParseDateTime(value, tzid)
	if err == nil {
		return parsed, nil
	}
	var zoneErr *calink.UnsupportedZoneError
	if errors.As(err, &zoneErr) {
		return time.Time{}, err
	}

	// natural language fallback
	if result, werr := as.When.Parse(value, time.Now().In(as.Config.GetLocation())); werr == nil && result != nil {
		return result.Time, nil
	}
	return time.Time{}, err
}

// Map link-engine errors onto HTTP statuses. Unknown providers are a routing
// miss, everything else the engine rejects is the caller's input.
func writeLinkError(w http.ResponseWriter, err error) {
	var unknownProviderErr *calink.UnknownProviderError
	if errors.As(err, &unknownProviderErr) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var invalidEventErr *calink.InvalidEventError
	var zoneErr *calink.UnsupportedZoneError
	if errors.As(err, &invalidEventErr) || errors.As(err, &zoneErr) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func Link(muxer *http.ServeMux, as *utils.AppState) {
	// one provider, link as plain text
	muxer.HandleFunc("GET /link/{provider}", func(w http.ResponseWriter, r *http.Request) {
		linkEvent, err := eventFromQuery(as, r)
		if err != nil {
			writeLinkError(w, err)
			return
		}

		providerKey := calink.ProviderKey(r.PathValue("provider"))
		link, err := calink.Generate(providerKey, linkEvent)
		if err != nil {
			writeLinkError(w, err)
			return
		}
		utils.Report(as.MetricChans.LinkGenerated, string(providerKey))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(link)); err != nil {
			slog.Warn("can't write to response", "where", "route/link.go", "err", err)
		}
	})

	// every provider, JSON
	muxer.HandleFunc("GET /links", func(w http.ResponseWriter, r *http.Request) {
		linkEvent, err := eventFromQuery(as, r)
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

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(results); err != nil {
			slog.Warn("can't write to response", "where", "route/link.go", "err", err)
		}
	})
}
