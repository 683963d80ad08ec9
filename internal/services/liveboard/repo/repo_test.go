package repo

import (
	"context"
	"strings"
	"testing"
	"time"

	"liveboard/internal/platform/store"
)

// fakeQueryer scripts QueryRow/Exec results and records the SQL it saw
type fakeQueryer struct {
	existsAnswers []bool
	execAffected  int64
	execErr       error

	probes  []string
	inserts []string
	args    [][]any
}

type fakeRow struct {
	exists bool
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) == 1 {
		if b, ok := dest[0].(*bool); ok {
			*b = r.exists
		}
	}
	return nil
}

type fakeTag struct{ n int64 }

func (t fakeTag) String() string      { return "FAKE" }
func (t fakeTag) RowsAffected() int64 { return t.n }

func (f *fakeQueryer) Exec(_ context.Context, sql string, args ...any) (store.CommandTag, error) {
	f.inserts = append(f.inserts, sql)
	f.args = append(f.args, args)
	if f.execErr != nil {
		return nil, f.execErr
	}
	return fakeTag{n: f.execAffected}, nil
}

func (f *fakeQueryer) Query(context.Context, string, ...any) (store.Rows, error) {
	return nil, nil
}

func (f *fakeQueryer) QueryRow(_ context.Context, sql string, args ...any) store.Row {
	f.probes = append(f.probes, sql)
	f.args = append(f.args, args)
	answer := false
	if len(f.existsAnswers) > 0 {
		answer = f.existsAnswers[0]
		f.existsAnswers = f.existsAnswers[1:]
	}
	return fakeRow{exists: answer}
}

func TestUpsert_NewRowInserts(t *testing.T) {
	q := &fakeQueryer{existsAnswers: []bool{false}, execAffected: 1}
	r := NewPG().Bind(q)

	at := time.Unix(1698937200, 0)
	ins, err := r.Upsert(context.Background(), Row{
		Station:       "Brussel-Zuid",
		Vehicle:       "BE.NMBS.IC1832",
		DepartureTime: &at,
		Platform:      "4",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !ins {
		t.Fatalf("expected insert for a new row")
	}
	if len(q.probes) != 1 || len(q.inserts) != 1 {
		t.Fatalf("probes=%d inserts=%d, want 1 and 1", len(q.probes), len(q.inserts))
	}
	if !strings.Contains(q.probes[0], "is not distinct from") {
		t.Fatalf("probe should be null safe: %s", q.probes[0])
	}
	if !strings.Contains(q.inserts[0], "on conflict (station, vehicle, departure_time) do nothing") {
		t.Fatalf("insert should carry the conflict clause: %s", q.inserts[0])
	}
}

func TestUpsert_ExistingRowSkipsInsert(t *testing.T) {
	q := &fakeQueryer{existsAnswers: []bool{true}}
	r := NewPG().Bind(q)

	ins, err := r.Upsert(context.Background(), Row{Station: "Brussel-Zuid", Vehicle: "BE.NMBS.IC1832"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if ins {
		t.Fatalf("expected no insert for an existing row")
	}
	if len(q.inserts) != 0 {
		t.Fatalf("insert ran despite existing row")
	}
}

func TestUpsert_ConflictRaceReportsNoInsert(t *testing.T) {
	// probe says missing but a concurrent writer wins; ON CONFLICT swallows it
	q := &fakeQueryer{existsAnswers: []bool{false}, execAffected: 0}
	r := NewPG().Bind(q)

	ins, err := r.Upsert(context.Background(), Row{Station: "Brussel-Zuid", Vehicle: "BE.NMBS.IC1832"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if ins {
		t.Fatalf("expected inserted=false when the conflict clause fires")
	}
}

func TestUpsert_NilDepartureTimePassesNull(t *testing.T) {
	q := &fakeQueryer{existsAnswers: []bool{false}, execAffected: 1}
	r := NewPG().Bind(q)

	if _, err := r.Upsert(context.Background(), Row{Station: "Brussel-Zuid", Vehicle: "BE.NMBS.L550"}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	// probe args then insert args
	insArgs := q.args[1]
	if len(insArgs) != 4 {
		t.Fatalf("insert args = %d, want 4", len(insArgs))
	}
	if tp, ok := insArgs[2].(*time.Time); !ok || tp != nil {
		t.Fatalf("departure_time arg should be a nil *time.Time, got %#v", insArgs[2])
	}
}
