package service

import (
	"liveboard/internal/adapters/irail"
	dom "liveboard/internal/services/liveboard/domain"
)

// Flatten extracts departure entries from a liveboard payload in upstream
// order. A payload without departures flattens to an empty slice
func Flatten(p irail.Payload) []dom.DepartureRecord {
	deps := p.Departures.Departure
	out := make([]dom.DepartureRecord, 0, len(deps))
	for _, d := range deps {
		out = append(out, dom.DepartureRecord{
			Station:  d.Station,
			Vehicle:  d.Vehicle,
			Time:     d.Time,
			Platform: d.Platform,
		})
	}
	return out
}
