package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codepace/codepace/internal/catalog"
	"github.com/codepace/codepace/internal/profile"
	"github.com/codepace/codepace/internal/progress"
	"github.com/codepace/codepace/internal/recommend"
	"github.com/codepace/codepace/internal/store"
)

// saveRetries bounds the reload-reapply loop on stale writes.
const saveRetries = 3

// Options carries the repositories a Service needs.
type Options struct {
	ProfileRepo store.ProfileRepo
	EventRepo   store.EventRepo
	CatalogRepo store.CatalogRepo
}

// Service wires the catalog, the recommendation engine, and the progress
// tracker over the persistence gateway. All engine calls go through a
// load-mutate-save cycle; the engine itself never touches the store.
type Service struct {
	profiles store.ProfileRepo
	events   store.EventRepo
	catalogs store.CatalogRepo

	catalog   *catalog.Catalog
	generator *recommend.Generator
	tracker   *progress.Tracker
}

// NewService builds a Service, loading the imported catalog if one exists
// and falling back to the built-in seed.
func NewService(ctx context.Context, opts Options) (*Service, error) {
	cat, err := loadCatalog(ctx, opts.CatalogRepo)
	if err != nil {
		return nil, err
	}
	return &Service{
		profiles:  opts.ProfileRepo,
		events:    opts.EventRepo,
		catalogs:  opts.CatalogRepo,
		catalog:   cat,
		generator: recommend.NewGenerator(cat),
		tracker:   progress.NewTracker(cat),
	}, nil
}

func loadCatalog(ctx context.Context, repo store.CatalogRepo) (*catalog.Catalog, error) {
	if repo != nil {
		raw, err := repo.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		if raw != nil {
			return catalog.Parse(raw)
		}
	}
	return catalog.Seed(), nil
}

// Catalog returns the active problem catalog.
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Today returns today's recommendation, generating it if the day has not
// been planned yet, and the snapshot it was derived from.
func (s *Service) Today(ctx context.Context, now time.Time, prefs recommend.Preferences) (*profile.DailyRecommendation, *profile.Snapshot, error) {
	var rec profile.DailyRecommendation
	snap, err := s.withSnapshot(ctx, func(snap *profile.Snapshot) {
		rec = *s.generator.Daily(snap, now, prefs)
	})
	if err != nil {
		return nil, nil, err
	}
	return &rec, snap, nil
}

// SolveResult is what a recorded solve changed.
type SolveResult struct {
	Transition *progress.LevelTransition
	Today      *profile.DailyRecommendation
	Snapshot   *profile.Snapshot
}

// Solve records a solved problem and appends a solve event to the log.
// Re-recording an already-solved id leaves the event log untouched so
// solve counts track distinct problems.
func (s *Service) Solve(ctx context.Context, problemID string, now time.Time) (*SolveResult, error) {
	res := &SolveResult{}
	newlySolved := false
	snap, err := s.withSnapshot(ctx, func(snap *profile.Snapshot) {
		res.Transition, newlySolved = s.tracker.OnProblemSolved(snap, problemID, now)
		if rec := snap.RecommendationFor(profile.DateKey(now)); rec != nil {
			r := *rec
			res.Today = &r
		}
	})
	if err != nil {
		return nil, err
	}
	res.Snapshot = snap

	if s.events != nil && newlySolved {
		if err := s.events.Append(ctx, store.SolveEventData{
			ProblemID: problemID,
			Kind:      store.EventKindSolved,
			At:        now,
		}); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Attempt records an unsuccessful attempt on a pending problem.
// Reports whether the problem was pending.
func (s *Service) Attempt(ctx context.Context, problemID string, now time.Time) (bool, error) {
	found := false
	_, err := s.withSnapshot(ctx, func(snap *profile.Snapshot) {
		found = s.tracker.RecordAttempt(snap, problemID, now)
	})
	if err != nil {
		return false, err
	}
	if found && s.events != nil {
		if err := s.events.Append(ctx, store.SolveEventData{
			ProblemID: problemID,
			Kind:      store.EventKindAttempted,
			At:        now,
		}); err != nil {
			return false, err
		}
	}
	return found, nil
}

// Snapshot loads the current learner snapshot without mutating it.
func (s *Service) Snapshot(ctx context.Context) (*profile.Snapshot, error) {
	rec, err := s.profiles.Load(ctx, store.DefaultProfileID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return progress.NewSnapshot(), nil
	}
	return decodeSnapshot(rec.Data)
}

// ImportCatalog validates and installs a new catalog file, returning the
// number of problems imported.
func (s *Service) ImportCatalog(ctx context.Context, raw []byte) (int, error) {
	cat, err := catalog.Parse(raw)
	if err != nil {
		return 0, err
	}
	if err := s.catalogs.Replace(ctx, raw); err != nil {
		return 0, err
	}
	s.catalog = cat
	s.generator = recommend.NewGenerator(cat)
	s.tracker = progress.NewTracker(cat)
	return cat.Len(), nil
}

// WeeklyActivity returns per-day solve counts for the seven days ending now.
func (s *Service) WeeklyActivity(ctx context.Context, now time.Time) ([]store.DayCount, error) {
	if s.events == nil {
		return nil, nil
	}
	return s.events.CountsByDay(ctx, now.AddDate(0, 0, -6), now)
}

// Reset deletes the learner profile.
func (s *Service) Reset(ctx context.Context) error {
	return s.profiles.Delete(ctx, store.DefaultProfileID)
}

// withSnapshot runs fn inside a load-mutate-save cycle. Stale writes
// (another device saved in between) reload and reapply up to saveRetries
// times.
func (s *Service) withSnapshot(ctx context.Context, fn func(*profile.Snapshot)) (*profile.Snapshot, error) {
	for attempt := 0; attempt < saveRetries; attempt++ {
		rec, err := s.profiles.Load(ctx, store.DefaultProfileID)
		if err != nil {
			return nil, err
		}

		var snap *profile.Snapshot
		if rec == nil {
			snap = progress.NewSnapshot()
			rec = &store.ProfileRecord{ID: store.DefaultProfileID}
		} else {
			snap, err = decodeSnapshot(rec.Data)
			if err != nil {
				return nil, err
			}
		}

		fn(snap)

		rec.Data, err = profile.Marshal(snap)
		if err != nil {
			return nil, err
		}

		err = s.profiles.Save(ctx, rec)
		if errors.Is(err, store.ErrStaleProfile) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return snap, nil
	}
	return nil, fmt.Errorf("save profile: %w", store.ErrStaleProfile)
}

func decodeSnapshot(data []byte) (*profile.Snapshot, error) {
	snap, err := profile.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	// Profiles written before any solve may predate the level table.
	if snap.CurrentLevel.Stage == 0 {
		snap.CurrentLevel = progress.InitialLevel()
	}
	return snap, nil
}
