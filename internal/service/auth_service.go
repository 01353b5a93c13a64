package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skabdullah999/Dumurianews24/internal/domain"
	"github.com/skabdullah999/Dumurianews24/internal/logger"
	"github.com/skabdullah999/Dumurianews24/internal/metrics"
	"github.com/skabdullah999/Dumurianews24/internal/repository"
)

// AuthService is the authentication and session gate. Sessions live in
// storage; interested observers subscribe to session-state transitions
// so UI elements can react without polling.
type AuthService struct {
	admins     repository.AdminUserRepository
	sessions   repository.SessionRepository
	sessionTTL time.Duration
	now        func() time.Time

	mu          sync.Mutex
	subscribers map[chan bool]struct{}
}

// NewAuthService creates a new AuthService.
func NewAuthService(admins repository.AdminUserRepository, sessions repository.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{
		admins:      admins,
		sessions:    sessions,
		sessionTTL:  sessionTTL,
		now:         time.Now,
		subscribers: make(map[chan bool]struct{}),
	}
}

// Login verifies credentials and creates a session. A single attempt per
// call; invalid credentials and transport errors both leave the caller
// anonymous, distinguished by the returned error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	user, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// One live session per account.
	if err := s.sessions.DeleteForUser(ctx, user.ID); err != nil {
		logger.Error("Failed to clear old sessions", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now().UTC()
	session := &domain.Session{
		Token:       uuid.New().String(),
		AdminUserID: user.ID,
		Expires:     now.Add(s.sessionTTL),
		Created:     now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		logger.Error("Failed to create session", slog.String("error", err.Error()))
		return nil, err
	}

	s.notify(true)
	return session, nil
}

// Logout destroys the session. Storage failures are logged but the local
// view still treats the caller as logged out.
func (s *AuthService) Logout(ctx context.Context, token string) {
	if token != "" {
		if err := s.sessions.Delete(ctx, token); err != nil {
			logger.Error("Logout failed", slog.String("error", err.Error()))
		}
	}
	s.notify(false)
}

// CheckSession is a read-only probe: it reports whether the token names
// a live, unexpired session without transitioning any state.
func (s *AuthService) CheckSession(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	session, err := s.sessions.Get(ctx, token)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("Session check failed", slog.String("error", err.Error()))
		}
		return false
	}
	return !session.Expired(s.now().UTC())
}

// Signup creates the first administrative account. The admin table is
// counted immediately before creation; any existing admin refuses the
// signup with domain.ErrAdminExists. This is a one-time bootstrap guard,
// not multi-admin support.
func (s *AuthService) Signup(ctx context.Context, email, password string) error {
	count, err := s.admins.Count(ctx)
	if err != nil {
		logger.Error("Signup pre-check failed", slog.String("error", err.Error()))
		return err
	}
	if count > 0 {
		return domain.ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &domain.AdminUser{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.admins.Insert(ctx, user); err != nil {
		logger.Error("Signup failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Subscribe registers an observer for session-state transitions. The
// returned channel receives true on login and false on logout; the
// cancel function unregisters the observer.
func (s *AuthService) Subscribe() (<-chan bool, func()) {
	ch := make(chan bool, 8)

	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// notify fans a transition out to subscribers without blocking; a slow
// observer just misses the event.
func (s *AuthService) notify(authenticated bool) {
	metrics.ObserveSessionTransition(authenticated)

	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- authenticated:
		default:
		}
	}
}
