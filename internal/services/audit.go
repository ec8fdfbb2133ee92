package services

import (
	"context"
	"time"

	"github.com/py2dev/repeatermap/internal/logging"
	"github.com/py2dev/repeatermap/internal/models"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
)

// Audit is the append-only event log written by the session store and
// the repeater registry. Entries are never rewritten or removed.
type Audit interface {
	// Record appends one entry, stamping Timestamp when it is zero.
	Record(ctx context.Context, entry models.AuditEntry) error

	// Tail returns the most recent n entries in chronological order.
	// n <= 0 returns the whole log.
	Tail(ctx context.Context, n int) ([]models.AuditEntry, error)
}

type auditService struct {
	store kv.Repository
	log   logging.Logger
	now   func() time.Time
}

func NewAuditService(store kv.Repository, log logging.Logger) Audit {
	return &auditService{store: store, log: log.With("component", "audit"), now: time.Now}
}

func (s *auditService) Record(ctx context.Context, entry models.AuditEntry) error {
	entries, err := loadList[models.AuditEntry](ctx, s.store, keyLogs)
	if err != nil {
		return err
	}

	if entry.Timestamp.IsZero() {
		entry.Timestamp = s.now().UTC()
	}

	entries = append(entries, entry)
	if err := saveJSON(ctx, s.store, keyLogs, entries); err != nil {
		return err
	}

	s.log.Debug(ctx, "audit entry recorded", "action", entry.Action, "user", entry.User)
	return nil
}

func (s *auditService) Tail(ctx context.Context, n int) ([]models.AuditEntry, error) {
	entries, err := loadList[models.AuditEntry](ctx, s.store, keyLogs)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n >= len(entries) {
		return entries, nil
	}
	return entries[len(entries)-n:], nil
}
