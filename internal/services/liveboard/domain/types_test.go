package domain

import (
	"testing"
	"time"
)

func TestDepartureTime_Seconds(t *testing.T) {
	rec := DepartureRecord{Time: "1698937200"}
	got := rec.DepartureTime()
	if got == nil {
		t.Fatalf("expected a time for epoch seconds")
	}
	want := time.Unix(1698937200, 0).In(time.Local)
	if !got.Equal(want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestDepartureTime_MillisecondsMatchSeconds(t *testing.T) {
	sec := DepartureRecord{Time: "1698937200"}
	ms := DepartureRecord{Time: "1698937200000"}
	st, mt := sec.DepartureTime(), ms.DepartureTime()
	if st == nil || mt == nil {
		t.Fatalf("expected both epochs to parse")
	}
	if !st.Equal(*mt) {
		t.Fatalf("seconds %v and milliseconds %v should be the same instant", st, mt)
	}
}

func TestDepartureTime_AbsentIsNil(t *testing.T) {
	rec := DepartureRecord{}
	if rec.DepartureTime() != nil {
		t.Fatalf("expected nil for empty time")
	}
}

func TestDepartureTime_GarbageIsNil(t *testing.T) {
	for _, raw := range []string{"soon", "12h30", "16989372.5"} {
		rec := DepartureRecord{Time: raw}
		if rec.DepartureTime() != nil {
			t.Fatalf("expected nil for %q", raw)
		}
	}
}
