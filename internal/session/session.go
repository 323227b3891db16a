package session

import (
	"context"
	"errors"
	"sync"

	"tikang-admin/internal/api"
	"tikang-admin/internal/models"
	"tikang-admin/internal/repository"

	"github.com/rs/zerolog"
)

// ErrNotLoggedIn is returned by operations that need an authenticated admin.
var ErrNotLoggedIn = errors.New("not logged in")

// AuthAPI is the slice of the gateway the store needs. The store is also the
// gateway's TokenSource, so the client is attached after construction.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (string, error)
	CurrentAdmin(ctx context.Context) (*models.Admin, error)
}

// Store holds the current admin identity and bearer token, persisting the
// token across runs through a SessionRepository. One instance per process.
type Store struct {
	repo   repository.SessionRepository
	api    AuthAPI
	logger *zerolog.Logger

	mu       sync.Mutex
	current  *models.Session
	loaded   bool
	fetching bool
}

func NewStore(repo repository.SessionRepository, logger *zerolog.Logger) *Store {
	return &Store{repo: repo, logger: logger}
}

// AttachAPI wires the gateway client once it exists.
func (s *Store) AttachAPI(client AuthAPI) {
	s.api = client
}

// Token implements api.TokenSource. Reads the persisted session on first use.
func (s *Store) Token(ctx context.Context) string {
	session := s.load(ctx)
	if session == nil {
		return ""
	}
	return session.Token
}

func (s *Store) load(ctx context.Context) *models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		session, err := s.repo.Get(ctx)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to read persisted session")
		} else {
			s.current = session
		}
		s.loaded = true
	}
	return s.current
}

// Login exchanges credentials for a token, persists it, and fetches the
// admin profile behind it.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	session := &models.Session{Token: token}
	s.mu.Lock()
	s.current = session
	s.loaded = true
	s.mu.Unlock()

	if err := s.repo.Set(ctx, session); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session")
	}

	if ok := s.FetchUser(ctx); !ok {
		return errors.New("login succeeded but the profile fetch was rejected")
	}
	return nil
}

// FetchUser calls the identity endpoint with the stored token. True means
// the profile is loaded. A rejected token clears the session; a transport
// failure leaves it in place but still reports false, so callers gate access
// either way.
func (s *Store) FetchUser(ctx context.Context) bool {
	session := s.load(ctx)
	if !session.LoggedIn() {
		return false
	}

	s.mu.Lock()
	if s.fetching {
		s.mu.Unlock()
		return s.Admin() != nil
	}
	s.fetching = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.fetching = false
		s.mu.Unlock()
	}()

	admin, err := s.api.CurrentAdmin(ctx)
	if err != nil {
		if api.IsAuthError(err) {
			s.logger.Info().Err(err).Msg("stored token rejected, clearing session")
			_ = s.clear(ctx)
		} else {
			s.logger.Error().Err(err).Msg("identity fetch failed")
		}
		return false
	}

	s.mu.Lock()
	s.current = &models.Session{Token: session.Token, Admin: admin, SavedAt: session.SavedAt}
	updated := *s.current
	s.mu.Unlock()

	if err := s.repo.Set(ctx, &updated); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session profile")
	}
	return true
}

// Admin returns the loaded profile, nil before a successful FetchUser.
func (s *Store) Admin() *models.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.Admin
}

func (s *Store) LoggedIn(ctx context.Context) bool {
	return s.load(ctx).LoggedIn()
}

// Logout clears token and profile. No server call is made.
func (s *Store) Logout(ctx context.Context) error {
	return s.clear(ctx)
}

func (s *Store) clear(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.loaded = true
	s.mu.Unlock()
	return s.repo.Clear(ctx)
}
