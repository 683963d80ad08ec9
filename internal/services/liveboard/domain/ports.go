package domain

import "context"

// ServicePort defines the liveboard service contract
type ServicePort interface {
	// Snapshot fetches and flattens the current board without writing
	Snapshot(ctx context.Context, station string) ([]DepartureRecord, error)

	// Collect fetches the board and, when write is set and the board is not
	// empty, persists it in a single transaction
	Collect(ctx context.Context, station string, write bool) (CollectResult, error)
}

// RunnerPort is the scheduled collector surface
type RunnerPort interface {
	Run(ctx context.Context) error
}
