package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/py2dev/repeatermap/internal/logging"
	"github.com/py2dev/repeatermap/internal/models"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
	"github.com/py2dev/repeatermap/internal/services"
)

func newTestApp(t *testing.T, seed []models.Repeater) *App {
	t.Helper()
	store := kv.NewMemoryRepository()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	audit := services.NewAuditService(store, logger)
	sessions := services.NewSessionService(store, audit, logger)
	registry := services.NewRegistry(store, sessions, audit, logger, seed)
	return &App{
		sessions: sessions,
		registry: registry,
		audit:    audit,
		reader:   bufio.NewReader(strings.NewReader("")),
	}
}

// scriptInputs replaces the interactive input seams with canned answers.
func scriptInputs(t *testing.T, texts []string, passwords []string) {
	scriptAllInputs(t, texts, passwords, nil)
}

func scriptAllInputs(t *testing.T, texts []string, passwords []string, floats []float64) {
	t.Helper()
	origText, origPass, origFloat := getSimpleText, getPassword, getFloat
	t.Cleanup(func() { getSimpleText, getPassword, getFloat = origText, origPass, origFloat })

	ti, pi, fi := 0, 0, 0
	getFloat = func(_ *bufio.Reader, _ string, _ io.Writer) (float64, error) {
		if fi >= len(floats) {
			t.Fatalf("unexpected float prompt #%d", fi)
		}
		v := floats[fi]
		fi++
		return v, nil
	}
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if ti >= len(texts) {
			t.Fatalf("unexpected text prompt #%d", ti)
		}
		v := texts[ti]
		ti++
		return v, nil
	}
	getPassword = func(_ string, _ io.Writer) ([]byte, error) {
		if pi >= len(passwords) {
			t.Fatalf("unexpected password prompt #%d", pi)
		}
		v := []byte(passwords[pi])
		pi++
		return v, nil
	}
}

func TestApp_RegisterThenLogin(t *testing.T) {
	app := newTestApp(t, nil)
	ctx := context.Background()

	scriptInputs(t,
		[]string{"PY2ABC", "Carlos", "a@b.com", "+55 11 99999-0000"},
		[]string{"secret1", "secret1"},
	)
	require.NoError(t, app.Register(ctx))
	assert.False(t, app.isLoggedIn())
	assert.Equal(t, "anonymous", app.status())

	scriptInputs(t, []string{"PY2ABC"}, []string{"secret1"})
	require.NoError(t, app.Login(ctx))
	assert.True(t, app.isLoggedIn())
	assert.Equal(t, "PY2ABC", app.status())

	require.NoError(t, app.Logout(ctx))
	assert.False(t, app.isLoggedIn())
}

func TestApp_LoginWrongPassword(t *testing.T) {
	app := newTestApp(t, nil)
	ctx := context.Background()

	scriptInputs(t,
		[]string{"PY2ABC", "Carlos", "a@b.com", ""},
		[]string{"secret1", "secret1"},
	)
	require.NoError(t, app.Register(ctx))

	scriptInputs(t, []string{"PY2ABC"}, []string{"wrong"})
	require.NoError(t, app.Login(ctx))
	assert.False(t, app.isLoggedIn())
}

func TestApp_AddRepeaterAnonymous(t *testing.T) {
	app := newTestApp(t, nil)
	ctx := context.Background()

	// callsign, frequency, offset, ctcss, location, power, coverage,
	// notes, then status and owner; coordinates answered separately
	scriptAllInputs(t, []string{
		"PY2ABC/R", "145.750", "-0.600", "88.5", "São Paulo, SP",
		"25W", "50km", "", "", "",
	}, nil, []float64{-23.5505, -46.6333})

	require.NoError(t, app.AddRepeater(ctx))

	all, err := app.registry.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "PY2ABC/R", all[0].Callsign)
	assert.Equal(t, "", all[0].CreatedBy)
	assert.Equal(t, models.StatusActive, all[0].Status)
}

func TestApp_DeleteRepeater(t *testing.T) {
	app := newTestApp(t, models.DefaultSeed())
	ctx := context.Background()

	scriptInputs(t, []string{"1"}, nil)
	require.NoError(t, app.DeleteRepeater(ctx))

	all, err := app.registry.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "2", all[0].ID)
}
