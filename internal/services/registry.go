package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/py2dev/repeatermap/internal/common"
	"github.com/py2dev/repeatermap/internal/logging"
	"github.com/py2dev/repeatermap/internal/models"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
)

// Registry owns the repeater collection. Every mutation is stamped with
// the current session's indicative and, when a session is active,
// mirrored into the audit log. Anonymous mutations are permitted but not
// audited.
type Registry interface {
	// Add assigns a fresh id, stamps timestamps and authorship, appends
	// the record and persists the collection.
	Add(ctx context.Context, draft models.RepeaterDraft) (models.Repeater, error)

	// Update merges patch over the record with the given id, always
	// overwriting UpdatedAt and LastModifiedBy. A missing id is a silent
	// no-op.
	Update(ctx context.Context, id string, patch models.RepeaterPatch) error

	// Delete removes the record with the given id. A missing id is a
	// silent no-op and appends no audit entry.
	Delete(ctx context.Context, id string) error

	// Search filters the collection: case-insensitive substring match on
	// callsign, location and owner, raw substring match on frequency, OR
	// across fields. An empty or whitespace-only query returns everything
	// in insertion order.
	Search(ctx context.Context, query string) ([]models.Repeater, error)

	// All returns the whole collection in insertion order.
	All(ctx context.Context) ([]models.Repeater, error)

	// Plottable returns the records carrying real coordinates; the 0,0
	// sentinel ("no coordinates") is excluded. This is the map view's
	// read surface.
	Plottable(ctx context.Context) ([]models.Repeater, error)
}

type registryService struct {
	store    kv.Repository
	sessions SessionService
	audit    Audit
	log      logging.Logger
	seed     []models.Repeater
	now      func() time.Time
}

// NewRegistry builds the repeater registry. seed is written to the store
// on first-ever access (persisted collection absent); pass nil to start
// empty. sessions supplies the acting identity for authorship stamps.
func NewRegistry(store kv.Repository, sessions SessionService, audit Audit, log logging.Logger, seed []models.Repeater) Registry {
	return &registryService{
		store:    store,
		sessions: sessions,
		audit:    audit,
		log:      log.With("component", "registry"),
		seed:     seed,
		now:      time.Now,
	}
}

// load reads the collection, seeding and persisting the bootstrap records
// when the key has never been written. An empty stored collection is not
// re-seeded.
func (s *registryService) load(ctx context.Context) ([]models.Repeater, error) {
	b, err := s.store.Get(ctx, keyRepeaters)
	if err != nil {
		return nil, err
	}

	if b == nil {
		if len(s.seed) == 0 {
			return nil, nil
		}
		seeded := slices.Clone(s.seed)
		if err := saveJSON(ctx, s.store, keyRepeaters, seeded); err != nil {
			return nil, err
		}
		s.log.Info(ctx, "seeded repeater collection", "count", len(seeded))
		return seeded, nil
	}

	var reps []models.Repeater
	if err := json.Unmarshal(b, &reps); err != nil {
		return nil, fmt.Errorf("failed to decode %s collection: %w: %w", keyRepeaters, common.ErrCorruptData, err)
	}
	return reps, nil
}

// actor returns the current session's indicative, or "" when anonymous.
func (s *registryService) actor() string {
	if u := s.sessions.Current(); u != nil {
		return u.Indicative
	}
	return ""
}

// nextID returns a fresh id: the current unix-milli, bumped past every
// existing numeric id so ids stay unique and monotonic by creation time
// even for adds within the same millisecond.
func (s *registryService) nextID(existing []models.Repeater) string {
	id := s.now().UnixMilli()
	for _, rep := range existing {
		if n, err := strconv.ParseInt(rep.ID, 10, 64); err == nil && n >= id {
			id = n + 1
		}
	}
	return strconv.FormatInt(id, 10)
}

func (s *registryService) Add(ctx context.Context, draft models.RepeaterDraft) (models.Repeater, error) {
	reps, err := s.load(ctx)
	if err != nil {
		return models.Repeater{}, err
	}

	now := s.now().UTC()
	actor := s.actor()
	rep := models.Repeater{
		ID:             s.nextID(reps),
		Callsign:       draft.Callsign,
		Frequency:      draft.Frequency,
		Offset:         draft.Offset,
		CTCSS:          draft.CTCSS,
		Location:       draft.Location,
		Latitude:       draft.Latitude,
		Longitude:      draft.Longitude,
		Power:          draft.Power,
		Coverage:       draft.Coverage,
		Status:         draft.Status,
		Owner:          draft.Owner,
		Notes:          draft.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
		CreatedBy:      actor,
		LastModifiedBy: actor,
	}

	reps = append(reps, rep)
	if err := saveJSON(ctx, s.store, keyRepeaters, reps); err != nil {
		return models.Repeater{}, err
	}

	if actor != "" {
		err := s.audit.Record(ctx, models.AuditEntry{
			Action:     models.ActionAddRepeater,
			User:       actor,
			RepeaterID: rep.ID,
		})
		if err != nil {
			return models.Repeater{}, err
		}
	}

	s.log.Info(ctx, "repeater added", "id", rep.ID, "callsign", rep.Callsign, "by", actor)
	return rep, nil
}

func (s *registryService) Update(ctx context.Context, id string, patch models.RepeaterPatch) error {
	reps, err := s.load(ctx)
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(reps, func(r models.Repeater) bool { return r.ID == id })
	if idx < 0 {
		return nil
	}

	rep := &reps[idx]
	patch.Apply(rep)

	now := s.now().UTC()
	if !now.After(rep.UpdatedAt) {
		now = rep.UpdatedAt.Add(time.Nanosecond)
	}
	actor := s.actor()
	rep.UpdatedAt = now
	rep.LastModifiedBy = actor

	if err := saveJSON(ctx, s.store, keyRepeaters, reps); err != nil {
		return err
	}

	if actor != "" {
		err := s.audit.Record(ctx, models.AuditEntry{
			Action:     models.ActionUpdateRepeater,
			User:       actor,
			RepeaterID: id,
		})
		if err != nil {
			return err
		}
	}

	s.log.Info(ctx, "repeater updated", "id", id, "by", actor)
	return nil
}

func (s *registryService) Delete(ctx context.Context, id string) error {
	reps, err := s.load(ctx)
	if err != nil {
		return err
	}

	remaining := slices.DeleteFunc(reps, func(r models.Repeater) bool { return r.ID == id })
	if len(remaining) == len(reps) {
		return nil
	}

	if err := saveJSON(ctx, s.store, keyRepeaters, remaining); err != nil {
		return err
	}

	actor := s.actor()
	if actor != "" {
		err := s.audit.Record(ctx, models.AuditEntry{
			Action:     models.ActionDeleteRepeater,
			User:       actor,
			RepeaterID: id,
		})
		if err != nil {
			return err
		}
	}

	s.log.Info(ctx, "repeater deleted", "id", id, "by", actor)
	return nil
}

func (s *registryService) All(ctx context.Context) ([]models.Repeater, error) {
	return s.load(ctx)
}

func (s *registryService) Search(ctx context.Context, query string) ([]models.Repeater, error) {
	reps, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(query) == "" {
		return reps, nil
	}

	q := strings.ToLower(query)
	result := make([]models.Repeater, 0, len(reps))
	for _, r := range reps {
		if strings.Contains(strings.ToLower(r.Callsign), q) ||
			strings.Contains(strings.ToLower(r.Location), q) ||
			strings.Contains(strings.ToLower(r.Owner), q) ||
			strings.Contains(r.Frequency, query) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (s *registryService) Plottable(ctx context.Context) ([]models.Repeater, error) {
	reps, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Repeater, 0, len(reps))
	for _, r := range reps {
		if r.HasCoordinates() {
			result = append(result, r)
		}
	}
	return result, nil
}
