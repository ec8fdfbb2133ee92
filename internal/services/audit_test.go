package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2dev/repeatermap/internal/models"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
)

func TestAudit_RecordStampsTimestamp(t *testing.T) {
	store := kv.NewMemoryRepository()
	audit := NewAuditService(store, testLogger())
	ctx := context.Background()

	before := time.Now().UTC()
	require.NoError(t, audit.Record(ctx, models.AuditEntry{Action: models.ActionLogin, User: "PY2ABC"}))

	entries := auditEntries(t, store)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionLogin, entries[0].Action)
	assert.Equal(t, "PY2ABC", entries[0].User)
	assert.False(t, entries[0].Timestamp.Before(before))
}

func TestAudit_RecordKeepsExplicitTimestamp(t *testing.T) {
	store := kv.NewMemoryRepository()
	audit := NewAuditService(store, testLogger())

	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, audit.Record(context.Background(), models.AuditEntry{
		Action:    models.ActionLogout,
		User:      "PY2ABC",
		Timestamp: ts,
	}))

	entries := auditEntries(t, store)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].Timestamp.Equal(ts))
}

func TestAudit_AppendOnlyOrder(t *testing.T) {
	store := kv.NewMemoryRepository()
	audit := NewAuditService(store, testLogger())
	ctx := context.Background()

	actions := []models.Action{models.ActionRegister, models.ActionLogin, models.ActionAddRepeater, models.ActionLogout}
	for _, a := range actions {
		require.NoError(t, audit.Record(ctx, models.AuditEntry{Action: a, User: "PY2ABC"}))
	}

	entries := auditEntries(t, store)
	require.Len(t, entries, len(actions))
	for i, a := range actions {
		assert.Equal(t, a, entries[i].Action)
	}
}

func TestAudit_Tail(t *testing.T) {
	store := kv.NewMemoryRepository()
	audit := NewAuditService(store, testLogger())
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, audit.Record(ctx, models.AuditEntry{Action: models.ActionLogin, User: "PY2ABC"}))
	}

	last2, err := audit.Tail(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, last2, 2)

	all, err := audit.Tail(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	more, err := audit.Tail(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, more, 5)
}
