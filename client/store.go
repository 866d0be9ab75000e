package client

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ActivityStore keeps a local registry of activities consistent with
// the remote store across asynchronous mutations. All state lives
// behind one mutex; every transition is applied atomically and then
// published to subscribers, so observers never see a torn intermediate
// state. There is no per-id locking: across concurrent invocations the
// last write for a given id wins.
type ActivityStore struct {
	agent *Client
	log   zerolog.Logger

	mu             sync.Mutex
	registry       map[string]Activity
	selectedID     string
	editMode       bool
	loading        bool
	loadingInitial bool
	subs           []chan Snapshot
}

// Snapshot is an immutable view of store state handed to observers.
type Snapshot struct {
	Activities     []Activity
	SelectedID     string
	EditMode       bool
	Loading        bool
	LoadingInitial bool
}

func NewActivityStore(agent *Client, log zerolog.Logger) *ActivityStore {
	return &ActivityStore{
		agent:    agent,
		log:      log,
		registry: make(map[string]Activity),
	}
}

// Subscribe returns a channel receiving a snapshot after every
// transition. Delivery is non-blocking: a subscriber that falls behind
// misses intermediate snapshots, never sees a partial one.
func (s *ActivityStore) Subscribe(buffer int) <-chan Snapshot {
	ch := make(chan Snapshot, buffer)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

// apply is the single mutation entry point. It runs fn under the lock,
// takes a snapshot and notifies subscribers.
func (s *ActivityStore) apply(transition string, fn func()) {
	s.mu.Lock()
	fn()
	snap := s.snapshotLocked()
	subs := append([]chan Snapshot(nil), s.subs...)
	s.mu.Unlock()

	s.log.Debug().Str("transition", transition).Msg("store transition")
	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *ActivityStore) snapshotLocked() Snapshot {
	acts := make([]Activity, 0, len(s.registry))
	for _, a := range s.registry {
		acts = append(acts, a)
	}
	return Snapshot{
		Activities:     acts,
		SelectedID:     s.selectedID,
		EditMode:       s.editMode,
		Loading:        s.loading,
		LoadingInitial: s.loadingInitial,
	}
}

// LoadActivities fetches the full list into the registry. A warm
// registry makes this a no-op so navigation does not refetch. On fault
// the in-flight flag is still cleared: the UI ends up empty, not stuck.
func (s *ActivityStore) LoadActivities(ctx context.Context) error {
	s.mu.Lock()
	warm := len(s.registry) > 1
	s.mu.Unlock()
	if warm {
		return nil
	}

	s.apply("load-activities-start", func() { s.loadingInitial = true })

	acts, err := s.agent.ListActivities(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("load activities failed")
		s.apply("load-activities-fail", func() { s.loadingInitial = false })
		return err
	}

	s.apply("load-activities-done", func() {
		for _, a := range acts {
			na := normalizeDate(a)
			s.registry[na.ID] = na
		}
		s.loadingInitial = false
	})
	return nil
}

// LoadActivity returns the activity for id, serving from the registry
// when possible (no network call) and fetching otherwise. A nil result
// means the activity is unavailable.
func (s *ActivityStore) LoadActivity(ctx context.Context, id string) (*Activity, error) {
	s.mu.Lock()
	cached, ok := s.registry[id]
	s.mu.Unlock()
	if ok {
		storeCacheHitsTotal.Inc()
		s.apply("select-activity", func() { s.selectedID = id })
		return &cached, nil
	}

	s.apply("load-activity-start", func() { s.loadingInitial = true })

	a, err := s.agent.GetActivity(ctx, id)
	if err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("load activity failed")
		s.apply("load-activity-fail", func() { s.loadingInitial = false })
		return nil, err
	}

	na := normalizeDate(*a)
	s.apply("load-activity-done", func() {
		s.registry[na.ID] = na
		s.selectedID = na.ID
		s.loadingInitial = false
	})
	return &na, nil
}

// CreateActivity assigns a fresh id and sends the create. On fault the
// registry is untouched and the assigned id is discarded; a retried
// create gets a new id, never the old one.
func (s *ActivityStore) CreateActivity(ctx context.Context, a Activity) error {
	a.ID = uuid.NewString()
	a.Date = expandDate(a.Date)

	s.apply("create-start", func() { s.loading = true })

	if err := s.agent.CreateActivity(ctx, a); err != nil {
		s.log.Error().Err(err).Msg("create activity failed")
		storeMutationFailuresTotal.WithLabelValues("create").Inc()
		s.apply("create-fail", func() { s.loading = false })
		return err
	}

	storeMutationsTotal.WithLabelValues("create").Inc()
	cached := normalizeDate(a)
	s.apply("create-done", func() {
		s.registry[cached.ID] = cached
		s.selectedID = cached.ID
		s.editMode = false
		s.loading = false
	})
	return nil
}

// UpdateActivity sends the whole record and overwrites the registry
// entry only after the server confirms, so a fault leaves the registry
// at its pre-update value.
func (s *ActivityStore) UpdateActivity(ctx context.Context, a Activity) error {
	a.Date = expandDate(a.Date)

	s.apply("update-start", func() { s.loading = true })

	if err := s.agent.UpdateActivity(ctx, a); err != nil {
		s.log.Error().Err(err).Str("id", a.ID).Msg("update activity failed")
		storeMutationFailuresTotal.WithLabelValues("update").Inc()
		s.apply("update-fail", func() { s.loading = false })
		return err
	}

	storeMutationsTotal.WithLabelValues("update").Inc()
	cached := normalizeDate(a)
	s.apply("update-done", func() {
		s.registry[cached.ID] = cached
		s.selectedID = cached.ID
		s.editMode = false
		s.loading = false
	})
	return nil
}

// DeleteActivity removes the id from the remote store, then from the
// registry, clearing the selection if it pointed at the removed id.
func (s *ActivityStore) DeleteActivity(ctx context.Context, id string) error {
	s.apply("delete-start", func() { s.loading = true })

	if err := s.agent.DeleteActivity(ctx, id); err != nil {
		s.log.Error().Err(err).Str("id", id).Msg("delete activity failed")
		storeMutationFailuresTotal.WithLabelValues("delete").Inc()
		s.apply("delete-fail", func() { s.loading = false })
		return err
	}

	storeMutationsTotal.WithLabelValues("delete").Inc()
	s.apply("delete-done", func() {
		delete(s.registry, id)
		if s.selectedID == id {
			s.selectedID = ""
		}
		s.loading = false
	})
	return nil
}

// OpenForm opens the edit form, selecting id when given; an empty id
// means a blank create form.
func (s *ActivityStore) OpenForm(id string) {
	s.apply("open-form", func() {
		if id != "" {
			s.selectedID = id
		}
		s.editMode = true
	})
}

// CloseForm closes the edit form without touching the registry.
func (s *ActivityStore) CloseForm() {
	s.apply("close-form", func() { s.editMode = false })
}

// ActivitiesByDate returns the registry contents sorted ascending by
// date (stable for equal dates).
func (s *ActivityStore) ActivitiesByDate() []Activity {
	s.mu.Lock()
	acts := make([]Activity, 0, len(s.registry))
	for _, a := range s.registry {
		acts = append(acts, a)
	}
	s.mu.Unlock()

	sort.SliceStable(acts, func(i, j int) bool {
		return parseDate(acts[i].Date).Before(parseDate(acts[j].Date))
	})
	return acts
}

func parseDate(d string) time.Time {
	if t, err := time.Parse("2006-01-02", d); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, d); err == nil {
		return t
	}
	return time.Time{}
}

// SelectedActivity resolves the current selection through the
// registry; the selection is an id, never a copy.
func (s *ActivityStore) SelectedActivity() *Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return nil
	}
	if a, ok := s.registry[s.selectedID]; ok {
		return &a
	}
	return nil
}

func (s *ActivityStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *ActivityStore) LoadingInitial() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingInitial
}

func (s *ActivityStore) EditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editMode
}
