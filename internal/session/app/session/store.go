package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/klwxsrx/ticketgate/pkg/log"
	"github.com/klwxsrx/ticketgate/pkg/worker"
)

// DefaultRefreshInterval is 5/6 of the 30 minute access token lifetime.
const DefaultRefreshInterval = 25 * time.Minute

const refreshFlightKey = "refresh"

var errSessionChanged = errors.New("session changed during refresh")

type Store struct {
	storage         Storage
	refresher       TokenRefresher
	navigator       Navigator
	validity        *ValidityCache
	logger          log.Logger
	refreshInterval time.Duration

	mu          sync.RWMutex
	session     *Session
	loading     bool
	closed      bool
	subscribers map[int]func()
	nextSubID   int
	stopRefresh context.CancelFunc
	timers      sync.WaitGroup

	refreshFlight singleflight.Group
}

func NewStore(
	storage Storage,
	refresher TokenRefresher,
	navigator Navigator,
	validity *ValidityCache,
	refreshInterval time.Duration,
	logger log.Logger,
) *Store {
	if refreshInterval <= 0 {
		refreshInterval = DefaultRefreshInterval
	}

	return &Store{
		storage:         storage,
		refresher:       refresher,
		navigator:       navigator,
		validity:        validity,
		logger:          logger,
		refreshInterval: refreshInterval,
		loading:         true,
		subscribers:     make(map[int]func()),
	}
}

// Init restores a persisted session. Stored credentials that are incomplete or expired end in Logout.
func (s *Store) Init(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
		s.notify()
	}()

	user, userFound, err := readJSON[User](s.storage, StorageKeyUser)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to read stored user")
	}
	tokens, tokensFound, err := readJSON[Tokens](s.storage, StorageKeyTokens)
	if err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to read stored tokens")
	}

	if !userFound && !tokensFound {
		s.clearStorage(ctx)
		return
	}

	if userFound && tokensFound && tokens.Access != "" {
		err = s.validity.Validate(tokens.Access)
		if err == nil {
			s.mu.Lock()
			s.session = &Session{User: user, Tokens: tokens}
			s.restartRefreshTimerLocked()
			s.mu.Unlock()
			return
		}
		s.logger.WithError(err).Info(ctx, "stored session is not valid")
	}

	s.logout(ctx)
}

// Login stores the session. Tokens without an access token leave the store logged out.
func (s *Store) Login(user User, tokens Tokens) {
	ctx := context.Background()
	if tokens.Access == "" {
		s.logger.Warn(ctx, "login without access token ignored")
		s.clear(ctx)
		s.notify()
		return
	}

	s.mu.Lock()
	s.session = &Session{User: user, Tokens: tokens}
	s.restartRefreshTimerLocked()
	s.mu.Unlock()

	if err := writeJSON(s.storage, StorageKeyUser, user); err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to persist user")
	}
	if err := writeJSON(s.storage, StorageKeyTokens, tokens); err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to persist tokens")
	}

	s.notify()
}

// Logout clears the session and navigates to the landing route. Calling it repeatedly is safe.
func (s *Store) Logout() {
	s.logout(context.Background())
}

func (s *Store) AccessToken() (string, bool) {
	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()

	if session == nil {
		return "", false
	}
	if !s.validity.IsValid(session.Tokens.Access) {
		return "", false
	}

	return session.Tokens.Access, true
}

// RefreshAccessToken exchanges the refresh token for a new access token. Concurrent calls share one request.
// A failed refresh logs the user out.
func (s *Store) RefreshAccessToken(ctx context.Context) bool {
	_, err, _ := s.refreshFlight.Do(refreshFlightKey, func() (any, error) {
		return s.refresh(ctx)
	})
	if err == nil {
		return true
	}

	s.logger.WithError(err).Warn(ctx, "access token refresh failed")
	if errors.Is(err, ErrRefreshFailed) && ctx.Err() == nil {
		s.logout(ctx)
	}

	return false
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return StateLoggedOut
	}

	return StateAuthenticated
}

func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loading
}

func (s *Store) Session() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.session == nil {
		return Session{}, false
	}

	return *s.session, true
}

// Subscribe registers fn to be called after every state change. The returned func unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Close stops the refresh timer and waits for it to exit. The session itself is kept.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.stopRefreshTimerLocked()
	s.mu.Unlock()

	s.timers.Wait()
}

func (s *Store) refresh(ctx context.Context) (string, error) {
	s.mu.RLock()
	session := s.session
	s.mu.RUnlock()

	if session == nil {
		return "", errSessionChanged
	}
	if session.Tokens.Refresh == "" {
		return "", fmt.Errorf("%w: refresh token is missing", ErrRefreshFailed)
	}

	accessToken, err := s.refresher.Refresh(ctx, session.Tokens.Refresh)
	if err == nil && accessToken == "" {
		err = errors.New("empty access token")
	}
	if err != nil {
		if s.sessionReplaced(session) {
			return "", errSessionChanged
		}
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	s.mu.Lock()
	if s.session != session {
		s.mu.Unlock()
		return "", errSessionChanged
	}
	s.session.Tokens.Access = accessToken
	tokens := s.session.Tokens
	s.restartRefreshTimerLocked()
	s.mu.Unlock()

	if err = writeJSON(s.storage, StorageKeyTokens, tokens); err != nil {
		s.logger.WithError(err).Warn(ctx, "failed to persist refreshed tokens")
	}
	s.notify()

	return accessToken, nil
}

// sessionReplaced reports whether a Login or Logout happened after the refresh started.
func (s *Store) sessionReplaced(session *Session) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session != session
}

func (s *Store) logout(ctx context.Context) {
	s.clear(ctx)
	s.navigator.Navigate(LandingRoute)
	s.notify()
}

func (s *Store) clear(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.stopRefreshTimerLocked()
	s.mu.Unlock()

	s.validity.Purge()
	s.clearStorage(ctx)
}

func (s *Store) clearStorage(ctx context.Context) {
	for _, key := range []string{StorageKeyUser, StorageKeyTokens} {
		if err := s.storage.Remove(key); err != nil {
			s.logger.WithError(err).WithField("key", key).Warn(ctx, "failed to remove stored session")
		}
	}
}

func (s *Store) restartRefreshTimerLocked() {
	s.stopRefreshTimerLocked()
	if s.closed {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.stopRefresh = cancel

	job := worker.PeriodicalJob(func(ctx context.Context) {
		s.RefreshAccessToken(ctx)
	}, s.refreshInterval)

	s.timers.Add(1)
	go func() {
		defer s.timers.Done()
		_ = job(ctx)
	}()
}

func (s *Store) stopRefreshTimerLocked() {
	if s.stopRefresh == nil {
		return
	}

	s.stopRefresh()
	s.stopRefresh = nil
}

func (s *Store) notify() {
	s.mu.RLock()
	subscribers := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subscribers {
		fn()
	}
}

func readJSON[T any](storage Storage, key string) (T, bool, error) {
	var result T
	data, ok, err := storage.Get(key)
	if err != nil {
		return result, false, fmt.Errorf("get %s: %w", key, err)
	}
	if !ok {
		return result, false, nil
	}

	if err = json.Unmarshal(data, &result); err != nil {
		return result, false, fmt.Errorf("decode %s: %w", key, err)
	}

	return result, true, nil
}

func writeJSON(storage Storage, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err = storage.Set(key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}

	return nil
}
