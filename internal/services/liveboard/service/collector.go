package service

import (
	"context"
	"time"

	"liveboard/internal/platform/logger"
)

// Run starts the scheduled collector loop. The first pass happens one full
// interval after start, matching the schedule-only trigger it replaces.
// A failed tick is logged and the loop keeps going; only context cancellation
// stops it
func (s *Svc) Run(ctx context.Context) error {
	log := logger.Named("liveboard-collector")
	log.Info().
		Str("station", s.cfg.Station).
		Dur("interval", s.cfg.Interval).
		Msg("collector started")

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			res, err := s.Collect(ctx, s.cfg.Station, true)
			if err != nil {
				log.Error().Err(err).Str("station", s.cfg.Station).Msg("collect tick failed")
				continue
			}
			if len(res.Records) == 0 {
				log.Info().Str("station", s.cfg.Station).Msg("no departures found")
				continue
			}
			log.Info().
				Str("station", s.cfg.Station).
				Int("records", len(res.Records)).
				Int("processed", res.Processed).
				Int("inserted", res.Inserted).
				Msg("collect tick done")
		}
	}
}
