// Package http provides the on demand liveboard trigger
package http

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	stdhttp "net/http"
	"strconv"
	"strings"

	"liveboard/internal/adapters/irail"
	"liveboard/internal/modkit/httpkit"
	perr "liveboard/internal/platform/errors"
	"liveboard/internal/platform/logger"
	"liveboard/internal/platform/net/http/bind"
	dom "liveboard/internal/services/liveboard/domain"
	svc "liveboard/internal/services/liveboard/service"
)

const departureTimeLayout = "2006-01-02 15:04:05"

// Register mounts the liveboard endpoint on the given router for both verbs
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s, log: logger.Named("liveboard-http")}
	httpkit.Get(r, "/liveboard", h.board)
	httpkit.Post(r, "/liveboard", h.board)
}

type handlers struct {
	svc svc.Service
	log *logger.Logger
}

// boardInput is the merged view of query string and optional JSON body
type boardInput struct {
	station string
	format  string
	write   bool
}

func (h *handlers) board(r *stdhttp.Request) (any, error) {
	in := h.input(r)

	res, err := h.svc.Collect(r.Context(), in.station, in.write)
	if err != nil {
		return nil, err
	}
	if len(res.Records) == 0 {
		return nil, perr.NotFoundf("no departures found")
	}

	if in.format == "json" {
		body, err := json.Marshal(res.Records)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "encode liveboard json failed")
		}
		return httpkit.Raw(stdhttp.StatusOK, "application/json; charset=utf-8", body), nil
	}

	body, err := renderCSV(res.Records)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "encode liveboard csv failed")
	}
	resp := httpkit.Raw(stdhttp.StatusOK, "text/csv; charset=utf-8", body)
	resp.Header = stdhttp.Header{}
	resp.Header.Set("Content-Disposition", `attachment; filename="`+attachmentName(in.station)+`"`)
	return resp, nil
}

// input merges defaults, query string and (for POST) the JSON body.
// A valid body wins field by field; a body that fails to decode or validate
// is logged and ignored so the query string still drives the request
func (h *handlers) input(r *stdhttp.Request) boardInput {
	q := r.URL.Query()
	in := boardInput{
		station: q.Get("station"),
		format:  strings.ToLower(q.Get("format")),
		write:   true,
	}

	raw := q.Get("sql")
	if raw == "" {
		raw = q.Get("writeToStore")
	}
	if raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			in.write = v
		}
	}

	if r.Method == stdhttp.MethodPost && r.Body != nil {
		body, err := bind.ParseJSON[dom.LiveboardInput](r, bind.JSONOptions{
			MaxBytes:        1 << 20,
			DisallowUnknown: true,
			AllowEmptyBody:  true,
		})
		switch {
		case err != nil:
			h.log.Warn().Err(err).Msg("liveboard body ignored, falling back to query params")
		default:
			if body.Station != "" {
				in.station = body.Station
			}
			if body.Format != "" {
				in.format = strings.ToLower(body.Format)
			}
			if body.SQL != nil {
				in.write = *body.SQL
			} else if body.WriteToStore != nil {
				in.write = *body.WriteToStore
			}
		}
	}

	if in.station == "" {
		in.station = irail.DefaultStation
	}
	if in.format != "json" {
		in.format = "csv"
	}
	return in
}

func renderCSV(recs []dom.DepartureRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"station", "vehicle", "time", "platform", "departure_time"}); err != nil {
		return nil, err
	}
	for _, rec := range recs {
		wall := ""
		if t := rec.DepartureTime(); t != nil {
			wall = t.Format(departureTimeLayout)
		}
		if err := w.Write([]string{rec.Station, rec.Vehicle, rec.Time, rec.Platform, wall}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func attachmentName(station string) string {
	return "liveboard_" + strings.ReplaceAll(station, " ", "_") + ".csv"
}
