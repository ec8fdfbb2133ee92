package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/py2dev/repeatermap/internal/logging"
	"github.com/py2dev/repeatermap/internal/models"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// stubSessions satisfies SessionService with a fixed identity; only
// Current is meaningful for registry tests.
type stubSessions struct {
	user *models.User
}

func (s *stubSessions) Login(context.Context, string, string) (bool, error) { return false, nil }
func (s *stubSessions) Register(context.Context, RegistrationData) (bool, error) {
	return false, nil
}
func (s *stubSessions) Logout(context.Context) error { return nil }
func (s *stubSessions) Current() *models.User {
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
func (s *stubSessions) Restore(context.Context) error { return nil }

func auditEntries(t *testing.T, store kv.Repository) []models.AuditEntry {
	t.Helper()
	entries, err := loadList[models.AuditEntry](context.Background(), store, keyLogs)
	require.NoError(t, err)
	return entries
}
