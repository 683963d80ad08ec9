package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestCaptureWriter_RecordsStatusAndBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK}

	cw.WriteHeader(http.StatusAccepted)
	n, err := cw.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write = %d, %v", n, err)
	}
	if cw.status != http.StatusAccepted || cw.bytes != 5 {
		t.Fatalf("capture mismatch status=%d bytes=%d", cw.status, cw.bytes)
	}
}

func TestAccessLogZerolog_PassesThrough(t *testing.T) {
	mw := AccessLogZerolog(AccessLogOptions{Slow: time.Second})
	h := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/liveboard", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
}

func TestIfEmpty(t *testing.T) {
	def := []string{"a"}
	if got := ifEmpty(nil, def); len(got) != 1 || got[0] != "a" {
		t.Fatalf("ifEmpty(nil) = %#v", got)
	}
	if got := ifEmpty([]string{"b"}, def); len(got) != 1 || got[0] != "b" {
		t.Fatalf("ifEmpty(vals) = %#v", got)
	}
}
