package app

import (
	"context"
	"testing"
	"time"

	"github.com/codepace/codepace/internal/profile"
	"github.com/codepace/codepace/internal/recommend"
	"github.com/codepace/codepace/internal/store"
)

// fakeProfileRepo is an in-memory ProfileRepo with the same
// compare-and-increment semantics as the SQLite one.
type fakeProfileRepo struct {
	rec       *store.ProfileRecord
	staleOnce bool
	saveCalls int
}

func (f *fakeProfileRepo) Load(_ context.Context, id string) (*store.ProfileRecord, error) {
	if f.rec == nil {
		return nil, nil
	}
	cp := *f.rec
	cp.Data = append([]byte(nil), f.rec.Data...)
	return &cp, nil
}

func (f *fakeProfileRepo) Save(_ context.Context, rec *store.ProfileRecord) error {
	f.saveCalls++
	if f.staleOnce {
		f.staleOnce = false
		return store.ErrStaleProfile
	}
	if f.rec != nil && rec.Revision != f.rec.Revision {
		return store.ErrStaleProfile
	}
	rec.Revision++
	cp := *rec
	cp.Data = append([]byte(nil), rec.Data...)
	f.rec = &cp
	return nil
}

func (f *fakeProfileRepo) Delete(_ context.Context, id string) error {
	f.rec = nil
	return nil
}

type fakeEventRepo struct {
	events []store.SolveEventData
}

func (f *fakeEventRepo) Append(_ context.Context, data store.SolveEventData) error {
	f.events = append(f.events, data)
	return nil
}

func (f *fakeEventRepo) CountsByDay(_ context.Context, _, _ time.Time) ([]store.DayCount, error) {
	return nil, nil
}

func (f *fakeEventRepo) TotalSolves(_ context.Context) (int, error) {
	n := 0
	for _, e := range f.events {
		if e.Kind == store.EventKindSolved {
			n++
		}
	}
	return n, nil
}

func newTestService(t *testing.T) (*Service, *fakeProfileRepo, *fakeEventRepo) {
	t.Helper()
	profiles := &fakeProfileRepo{}
	events := &fakeEventRepo{}
	svc, err := NewService(context.Background(), Options{
		ProfileRepo: profiles,
		EventRepo:   events,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc, profiles, events
}

var noon = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

func TestTodayThenSolveFlow(t *testing.T) {
	svc, profiles, events := newTestService(t)
	ctx := context.Background()

	rec, snap, err := svc.Today(ctx, noon, recommend.Preferences{})
	if err != nil {
		t.Fatalf("today: %v", err)
	}
	if len(rec.Problems) != 2 {
		t.Fatalf("fresh slow-pace day should assign 2 problems, got %v", rec.Problems)
	}
	if snap.CurrentLevel.Name != profile.LevelAbsoluteBeginner {
		t.Errorf("level = %s", snap.CurrentLevel.Name)
	}
	if profiles.rec == nil {
		t.Fatal("today must persist the generated plan")
	}

	res, err := svc.Solve(ctx, rec.Problems[0], noon.Add(time.Hour))
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if res.Today == nil || res.Today.Completed != 1 || res.Today.Status != profile.StatusPartial {
		t.Errorf("today after solve = %+v", res.Today)
	}
	if len(events.events) != 1 || events.events[0].Kind != store.EventKindSolved {
		t.Errorf("events = %+v", events.events)
	}

	// Re-reading the day must return the same plan with updated progress.
	again, _, err := svc.Today(ctx, noon, recommend.Preferences{})
	if err != nil {
		t.Fatalf("today again: %v", err)
	}
	if again.Completed != 1 || len(again.Problems) != len(rec.Problems) {
		t.Errorf("re-read = %+v", again)
	}
}

func TestSolveRepeatDoesNotAppendEvent(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Solve(ctx, "two-sum", noon); err != nil {
		t.Fatalf("solve: %v", err)
	}
	if _, err := svc.Solve(ctx, "two-sum", noon.Add(time.Hour)); err != nil {
		t.Fatalf("repeat solve: %v", err)
	}

	if len(events.events) != 1 {
		t.Errorf("events = %+v, want one entry for a distinct solve", events.events)
	}
	n, err := events.TotalSolves(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("TotalSolves = %d, want 1", n)
	}
}

func TestWithSnapshotRetriesStaleWrites(t *testing.T) {
	svc, profiles, _ := newTestService(t)
	profiles.staleOnce = true

	_, _, err := svc.Today(context.Background(), noon, recommend.Preferences{})
	if err != nil {
		t.Fatalf("today should survive one stale write: %v", err)
	}
	if profiles.saveCalls != 2 {
		t.Errorf("saveCalls = %d, want 2 (one stale, one retry)", profiles.saveCalls)
	}
}

func TestAttemptOnlyTouchesPending(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	found, err := svc.Attempt(ctx, "nothing-pending", noon)
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Error("attempt on unknown problem should report not found")
	}
	if len(events.events) != 0 {
		t.Error("no event should be logged for a missed attempt")
	}

	rec, _, err := svc.Today(ctx, noon, recommend.Preferences{})
	if err != nil {
		t.Fatal(err)
	}
	found, err = svc.Attempt(ctx, rec.Problems[0], noon)
	if err != nil {
		t.Fatal(err)
	}
	if !found {
		t.Error("attempt on an assigned problem should be recorded")
	}

	snap, err := svc.Snapshot(ctx)
	if err != nil {
		t.Fatal(err)
	}
	p := snap.Pending(rec.Problems[0])
	if p == nil || p.Attempts != 1 {
		t.Errorf("pending after attempt = %+v", p)
	}
}

func TestImportCatalogRejectsInvalid(t *testing.T) {
	profiles := &fakeProfileRepo{}
	catalogs := &fakeCatalogRepo{}
	svc, err := NewService(context.Background(), Options{
		ProfileRepo: profiles,
		CatalogRepo: catalogs,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ImportCatalog(context.Background(), []byte(`[{"id":"x"}]`)); err == nil {
		t.Error("schema-invalid catalog must be rejected")
	}
	if catalogs.raw != nil {
		t.Error("rejected catalog must not be stored")
	}

	n, err := svc.ImportCatalog(context.Background(),
		[]byte(`[{"id":"x","title":"X","category":"Arrays","difficulty":"Easy"}]`))
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Errorf("imported = %d, want 1", n)
	}
	if svc.Catalog().Len() != 1 {
		t.Error("service should switch to the imported catalog")
	}
}

type fakeCatalogRepo struct {
	raw []byte
}

func (f *fakeCatalogRepo) Load(_ context.Context) ([]byte, error) {
	return f.raw, nil
}

func (f *fakeCatalogRepo) Replace(_ context.Context, raw []byte) error {
	f.raw = append([]byte(nil), raw...)
	return nil
}
