package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/py2dev/repeatermap/internal/logging"
	"github.com/py2dev/repeatermap/internal/models"
	"github.com/py2dev/repeatermap/internal/repositories/kv"
)

// RegistrationData is the caller-supplied input of Register.
type RegistrationData struct {
	Indicative      string
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

// SessionService owns the registered-user directory and the single
// active session.
//
// Expected domain outcomes (bad credentials, duplicate registration) are
// reported as a false result; errors are reserved for storage failures.
type SessionService interface {
	// Login matches indicative (case-sensitive) and password against the
	// user directory. On success the session is set and persisted and a
	// login audit entry is appended. On no match nothing changes.
	Login(ctx context.Context, indicative, password string) (bool, error)

	// Register adds a new user. It fails without side effect when the
	// indicative or email is already taken, or when the password
	// confirmation does not match. It never logs the new user in.
	Register(ctx context.Context, data RegistrationData) (bool, error)

	// Logout clears the active session, appending a logout audit entry
	// for the outgoing user. Without an active session it is a no-op and
	// appends nothing.
	Logout(ctx context.Context) error

	// Current returns a copy of the authenticated user, or nil when
	// anonymous.
	Current() *models.User

	// Restore adopts a previously persisted session without re-validating
	// credentials. A missing or unreadable session leaves the store
	// anonymous.
	Restore(ctx context.Context) error
}

type sessionService struct {
	store   kv.Repository
	audit   Audit
	log     logging.Logger
	current *models.Session
}

func NewSessionService(store kv.Repository, audit Audit, log logging.Logger) SessionService {
	return &sessionService{store: store, audit: audit, log: log.With("component", "session")}
}

func (s *sessionService) Login(ctx context.Context, indicative, password string) (bool, error) {
	users, err := loadList[models.User](ctx, s.store, keyUsers)
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if u.Indicative != indicative {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			continue
		}

		sess := &models.Session{ID: uuid.NewString(), User: u, LoginAt: time.Now().UTC()}
		if err := saveJSON(ctx, s.store, keyCurrentUser, sess); err != nil {
			return false, err
		}
		s.current = sess

		if err := s.audit.Record(ctx, models.AuditEntry{Action: models.ActionLogin, User: indicative}); err != nil {
			return false, err
		}

		s.log.Info(ctx, "login", "indicative", indicative)
		return true, nil
	}

	s.log.Info(ctx, "login failed", "indicative", indicative)
	return false, nil
}

func (s *sessionService) Register(ctx context.Context, data RegistrationData) (bool, error) {
	users, err := loadList[models.User](ctx, s.store, keyUsers)
	if err != nil {
		return false, err
	}

	for _, u := range users {
		if u.Indicative == data.Indicative || u.Email == data.Email {
			return false, nil
		}
	}

	if data.Password != data.ConfirmPassword {
		return false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	users = append(users, models.User{
		Indicative: data.Indicative,
		Name:       data.Name,
		Email:      data.Email,
		Phone:      data.Phone,
		Password:   string(hash),
	})

	if err := saveJSON(ctx, s.store, keyUsers, users); err != nil {
		return false, err
	}

	if err := s.audit.Record(ctx, models.AuditEntry{Action: models.ActionRegister, User: data.Indicative}); err != nil {
		return false, err
	}

	s.log.Info(ctx, "user registered", "indicative", data.Indicative)
	return true, nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if s.current == nil {
		return nil
	}

	indicative := s.current.User.Indicative
	if err := s.audit.Record(ctx, models.AuditEntry{Action: models.ActionLogout, User: indicative}); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, keyCurrentUser); err != nil {
		return err
	}
	s.current = nil

	s.log.Info(ctx, "logout", "indicative", indicative)
	return nil
}

func (s *sessionService) Current() *models.User {
	if s.current == nil {
		return nil
	}
	u := s.current.User
	return &u
}

func (s *sessionService) Restore(ctx context.Context) error {
	b, err := s.store.Get(ctx, keyCurrentUser)
	if err != nil {
		return err
	}
	if b == nil {
		return nil
	}

	var sess models.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		// A broken cached session must not prevent startup.
		s.log.Warn(ctx, "discarding unreadable persisted session", "error", err)
		return nil
	}
	if sess.User.Indicative == "" {
		s.log.Warn(ctx, "discarding persisted session without a user")
		return nil
	}

	s.current = &sess
	s.log.Info(ctx, "session restored", "indicative", sess.User.Indicative)
	return nil
}
