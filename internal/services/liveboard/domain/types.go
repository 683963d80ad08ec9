// Package domain holds liveboard records and the service contracts around them
package domain

import (
	"strconv"
	"time"
)

// epoch values above this are treated as milliseconds rather than seconds
const epochMsThreshold = int64(1e10)

// DepartureRecord is one flattened liveboard entry as persisted and served.
// Time carries the raw epoch value exactly as the upstream sent it
type DepartureRecord struct {
	Station  string `json:"station"`
	Vehicle  string `json:"vehicle"`
	Time     string `json:"time"`
	Platform string `json:"platform"`
}

// DepartureTime interprets the raw epoch Time field as a wall clock instant
// in the local timezone. Absent or unparsable values yield nil so they land
// as NULL departure_time rows
func (d DepartureRecord) DepartureTime() *time.Time {
	if d.Time == "" {
		return nil
	}
	n, err := strconv.ParseInt(d.Time, 10, 64)
	if err != nil {
		return nil
	}
	var t time.Time
	if n > epochMsThreshold {
		t = time.UnixMilli(n).In(time.Local)
	} else {
		t = time.Unix(n, 0).In(time.Local)
	}
	return &t
}

// CollectResult summarizes one collect pass over a station
type CollectResult struct {
	Records   []DepartureRecord
	Processed int
	Inserted  int
}

// LiveboardInput is the on demand trigger body for POST callers.
// Pointer bools distinguish an absent field from an explicit false so the
// query string value still wins when the body omits it
type LiveboardInput struct {
	Station      string `json:"station,omitempty" validate:"omitempty,min=1,max=120" example:"Brussel-Zuid"`
	Format       string `json:"format,omitempty" validate:"omitempty,oneof=csv json" example:"csv"`
	SQL          *bool  `json:"sql,omitempty"`
	WriteToStore *bool  `json:"writeToStore,omitempty"`
}
