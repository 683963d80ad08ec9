package irail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "liveboard/internal/platform/errors"
)

const sampleBody = `{
  "version": "1.3",
  "station": "Brussels-South/Brussels-Midi",
  "departures": {
    "number": "2",
    "departure": [
      {"station": "Gent-Sint-Pieters", "vehicle": "BE.NMBS.IC1832", "time": "1698937200", "platform": "4", "delay": "0", "canceled": "0"},
      {"station": "Antwerpen-Centraal", "vehicle": "BE.NMBS.IC2630", "time": "1698937500", "platform": "12", "delay": "60", "canceled": "0"}
    ]
  }
}`

func TestLiveboard_Success(t *testing.T) {
	var gotPath, gotStation, gotFormat, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotStation = r.URL.Query().Get("station")
		gotFormat = r.URL.Query().Get("format")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleBody))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	p, err := c.Liveboard(context.Background(), "Brussel-Zuid")
	if err != nil {
		t.Fatalf("Liveboard: %v", err)
	}

	if gotPath != "/liveboard/" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotStation != "Brussel-Zuid" || gotFormat != "json" {
		t.Fatalf("query station=%q format=%q", gotStation, gotFormat)
	}
	if gotUA != defaultUA {
		t.Fatalf("user agent = %q", gotUA)
	}

	deps := p.Departures.Departure
	if len(deps) != 2 {
		t.Fatalf("departures = %d, want 2", len(deps))
	}
	if deps[0].Station != "Gent-Sint-Pieters" || deps[0].Vehicle != "BE.NMBS.IC1832" ||
		deps[0].Time != "1698937200" || deps[0].Platform != "4" {
		t.Fatalf("first departure mismatch: %+v", deps[0])
	}
}

func TestLiveboard_EmptyStationUsesDefault(t *testing.T) {
	var gotStation string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStation = r.URL.Query().Get("station")
		_, _ = w.Write([]byte(`{"departures":{"number":"0","departure":[]}}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	if _, err := c.Liveboard(context.Background(), ""); err != nil {
		t.Fatalf("Liveboard: %v", err)
	}
	if gotStation != DefaultStation {
		t.Fatalf("station = %q, want %q", gotStation, DefaultStation)
	}
}

func TestLiveboard_Non2xxIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.Liveboard(context.Background(), "Gent-Sint-Pieters")
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected unavailable, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestLiveboard_MalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[1,2,3]`)) // not an object
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	_, err := c.Liveboard(context.Background(), "Gent-Sint-Pieters")
	if perr.CodeOf(err) != perr.ErrorCodeUnavailable {
		t.Fatalf("expected unavailable for malformed payload, got %v (%v)", perr.CodeOf(err), err)
	}
}

func TestLiveboard_MissingDeparturesDecodesEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"version":"1.3"}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL})
	p, err := c.Liveboard(context.Background(), "Gent-Sint-Pieters")
	if err != nil {
		t.Fatalf("Liveboard: %v", err)
	}
	if len(p.Departures.Departure) != 0 {
		t.Fatalf("expected zero departures, got %d", len(p.Departures.Departure))
	}
}

func TestLiveboard_ContextCancel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(Options{BaseURL: srv.URL})
	if _, err := c.Liveboard(ctx, "Gent-Sint-Pieters"); err == nil {
		t.Fatalf("expected error for canceled context")
	}
}
