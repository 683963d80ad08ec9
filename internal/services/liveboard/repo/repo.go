// Package repo provides postgres access for liveboard rows
package repo

import (
	"context"
	"time"

	"liveboard/internal/modkit/repokit"
	perr "liveboard/internal/platform/errors"
)

// Repo defines the repository contract for liveboard rows
type Repo interface {
	// Upsert writes row unless a row with the same identity already exists.
	// It reports whether a new row was inserted
	Upsert(ctx context.Context, row Row) (bool, error)

	// Count returns the number of rows for a station (all stations when empty)
	Count(ctx context.Context, station string) (int64, error)
}

// Row is one liveboard_data row. Identity is (station, vehicle,
// departure_time) with NULL departure times treated as equal
type Row struct {
	Station       string
	Vehicle       string
	DepartureTime *time.Time
	Platform      string
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

// Upsert probes for the identity key first, then inserts with
// ON CONFLICT DO NOTHING. The unique index (declared NULLS NOT DISTINCT)
// backs the same identity, so the probe and the conflict clause agree even
// when two writers race on the same departure
func (r *queries) Upsert(ctx context.Context, row Row) (bool, error) {
	const probe = `
select exists(
  select 1 from liveboard_data
  where station = $1
    and vehicle = $2
    and departure_time is not distinct from $3
)
`
	var found bool
	if err := r.q.QueryRow(ctx, probe, row.Station, row.Vehicle, row.DepartureTime).Scan(&found); err != nil {
		return false, perr.FromPostgresf(err, "liveboard existence probe failed")
	}
	if found {
		return false, nil
	}

	const ins = `
insert into liveboard_data (station, vehicle, departure_time, platform)
values ($1, $2, $3, $4)
on conflict (station, vehicle, departure_time) do nothing
`
	tag, err := r.q.Exec(ctx, ins, row.Station, row.Vehicle, row.DepartureTime, row.Platform)
	if err != nil {
		return false, perr.FromPostgresf(err, "liveboard insert failed")
	}
	return tag.RowsAffected() == 1, nil
}

func (r *queries) Count(ctx context.Context, station string) (int64, error) {
	const sql = `select count(*) from liveboard_data where ($1 = '' or station = $1)`
	var n int64
	if err := r.q.QueryRow(ctx, sql, station).Scan(&n); err != nil {
		return 0, perr.FromPostgresf(err, "liveboard count failed")
	}
	return n, nil
}
