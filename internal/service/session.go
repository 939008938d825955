package service

import (
	"context"
	"errors"
	"sync"

	"github.com/BloggingApp/story-service/internal/metrics"
	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Session holds the single authenticated user of a client context and mirrors it
// to durable storage. The zero session is anonymous.
type Session struct {
	logger      *zap.Logger
	storage     repository.Storage
	credentials *CredentialStore
	metrics     *metrics.Metrics
	variant     Variant

	mu   sync.RWMutex
	user *model.User
	sid  string
}

// storedSession is the persisted form: the user plus the id of the login that created it.
type storedSession struct {
	model.User
	SessionID string `json:"sid,omitempty"`
}

func NewSession(logger *zap.Logger, storage repository.Storage, credentials *CredentialStore, variant Variant, m *metrics.Metrics) *Session {
	return &Session{
		logger:      logger,
		storage:     storage,
		credentials: credentials,
		metrics:     m,
		variant:     variant,
	}
}

// Restore loads the persisted session. Missing, unreadable or malformed data
// leaves the session anonymous.
func (s *Session) Restore(ctx context.Context) {
	stored, err := repository.GetJSON[storedSession](ctx, s.storage, s.variant.SessionKey)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.sid = ""
	if err != nil {
		if !errors.Is(err, repository.ErrKeyNotFound) {
			s.logger.Sugar().Warnf("failed to restore %s session: %s", s.variant.Name, err.Error())
		}
		return
	}
	if stored == nil || !wellFormed(&stored.User) {
		s.logger.Sugar().Warnf("ignoring malformed %s session", s.variant.Name)
		return
	}

	user := stored.User
	s.user = &user
	s.sid = stored.SessionID
}

func wellFormed(user *model.User) bool {
	return user != nil && user.ID != "" && user.Username != "" && user.Role.Valid()
}

// Login reports false with a nil error when the credentials do not match. The
// error is only set when the session could not be persisted.
func (s *Session) Login(ctx context.Context, username string, password string) (bool, error) {
	identity, ok := s.credentials.Match(username, password)
	s.metrics.Login(s.variant.Name, ok)
	if !ok {
		return false, nil
	}

	user := identity.User()
	sid := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := repository.SetJSON(ctx, s.storage, s.variant.SessionKey, storedSession{User: user, SessionID: sid}); err != nil {
		s.logger.Sugar().Errorf("failed to persist %s session of user(%s): %s", s.variant.Name, user.ID, err.Error())
		return false, ErrInternal
	}

	s.user = &user
	s.sid = sid
	return true, nil
}

func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Del(ctx, s.variant.SessionKey); err != nil {
		s.logger.Sugar().Errorf("failed to delete %s session: %s", s.variant.Name, err.Error())
		return ErrInternal
	}

	s.user = nil
	s.sid = ""
	return nil
}

func (s *Session) Current() (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// Active returns the current user together with the id of the login that created the session.
func (s *Session) Active() (model.User, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return model.User{}, "", false
	}
	return *s.user, s.sid, true
}

// Verify returns the current user only if sessionID names the login that is still active.
// Every login issues a new id, so ids from before a logout never match again.
func (s *Session) Verify(sessionID string) (model.User, bool) {
	user, sid, ok := s.Active()
	if !ok || sid == "" || sid != sessionID {
		return model.User{}, false
	}
	return user, true
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

func (s *Session) IsAdmin() bool {
	user, ok := s.Current()
	return ok && user.IsAdmin()
}

func (s *Session) Variant() Variant {
	return s.variant
}
