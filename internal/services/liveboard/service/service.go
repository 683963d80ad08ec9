// Package service contains liveboard workflows
package service

import (
	"context"
	"time"

	"liveboard/internal/adapters/irail"
	"liveboard/internal/modkit/repokit"
	dom "liveboard/internal/services/liveboard/domain"
	"liveboard/internal/services/liveboard/repo"
)

// Feed is the upstream departures source
type Feed interface {
	Liveboard(ctx context.Context, station string) (irail.Payload, error)
}

// Config for the liveboard service
type Config struct {
	// Station the scheduled collector polls
	Station string
	// Interval between collector ticks
	Interval time.Duration
}

// Service defines the service contract for liveboard
type Service interface{ dom.ServicePort }

// Svc implements the Service interface
type Svc struct {
	feed   Feed
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	cfg    Config
}

// New creates a new liveboard service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], feed Feed, cfg Config) *Svc {
	if db == nil {
		panic("liveboard.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("liveboard.Service requires a non nil Repo binder")
	}
	if feed == nil {
		panic("liveboard.Service requires a non nil Feed")
	}
	if cfg.Station == "" {
		cfg.Station = irail.DefaultStation
	}
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Minute
	}
	return &Svc{feed: feed, binder: binder, db: db, cfg: cfg}
}

// Snapshot fetches and flattens the current board without writing
func (s *Svc) Snapshot(ctx context.Context, station string) ([]dom.DepartureRecord, error) {
	p, err := s.feed.Liveboard(ctx, station)
	if err != nil {
		return nil, err
	}
	return Flatten(p), nil
}

// Collect fetches the board and optionally persists it. The whole batch runs
// in one transaction with a single commit after the loop; a mid batch failure
// rolls everything back. An empty board is not an error here, callers decide
// what "nothing to do" means for them
func (s *Svc) Collect(ctx context.Context, station string, write bool) (dom.CollectResult, error) {
	recs, err := s.Snapshot(ctx, station)
	if err != nil {
		return dom.CollectResult{}, err
	}

	res := dom.CollectResult{Records: recs}
	if len(recs) == 0 || !write {
		return res, nil
	}

	err = repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		rr := s.binder.Bind(q)
		for _, rec := range recs {
			ins, err := rr.Upsert(ctx, repo.Row{
				Station:       rec.Station,
				Vehicle:       rec.Vehicle,
				DepartureTime: rec.DepartureTime(),
				Platform:      rec.Platform,
			})
			if err != nil {
				return err
			}
			res.Processed++
			if ins {
				res.Inserted++
			}
		}
		return nil
	})
	if err != nil {
		return dom.CollectResult{Records: recs}, err
	}
	return res, nil
}
