package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	apperrors "pipeline-crm-backend/internal/errors"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/logger"
	"pipeline-crm-backend/internal/repository"

	"github.com/google/uuid"
)

// SessionState is the lifecycle phase of the managed session
type SessionState string

const (
	StateInitializing    SessionState = "initializing"
	StateAuthenticated   SessionState = "authenticated"
	StateUnauthenticated SessionState = "unauthenticated"
)

// Session is the minimal identity handle returned by a provider
type Session struct {
	ProfileID uuid.UUID
	Email     string
	Token     string
	IssuedAt  time.Time
}

// SessionProvider retrieves the current persisted session, if any.
// Implementations must honor the context deadline.
type SessionProvider interface {
	FetchSession(ctx context.Context) (*Session, error)
}

// ProfileFetcher loads the profile row behind a session identity
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error)
}

// RepositoryProfileFetcher adapts the profile repository to the
// ProfileFetcher interface
type RepositoryProfileFetcher struct {
	repo repository.ProfileRepositoryInterface
}

// NewRepositoryProfileFetcher wraps a profile repository as a ProfileFetcher
func NewRepositoryProfileFetcher(repo repository.ProfileRepositoryInterface) *RepositoryProfileFetcher {
	return &RepositoryProfileFetcher{repo: repo}
}

// FetchProfile loads a profile by ID, honoring context cancellation
func (f *RepositoryProfileFetcher) FetchProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return f.repo.GetByID(profileID)
}

// SessionManagerOptions bounds the manager's external calls
type SessionManagerOptions struct {
	SessionFetchTimeout time.Duration
	ProfileFetchTimeout time.Duration
	StalenessThreshold  time.Duration
}

// SessionManager owns the authenticated identity for the lifetime of an
// application session. It is an injected coordinator: components read its
// state instead of consulting a process-wide global. A provider that does
// not answer within the fetch timeout resolves the state to
// Unauthenticated rather than leaving the manager stuck initializing.
type SessionManager struct {
	provider SessionProvider
	profiles ProfileFetcher
	opts     SessionManagerOptions
	log      *logger.Logger

	mu           sync.RWMutex
	state        SessionState
	session      *Session
	profile      *models.Profile
	lastActivity time.Time

	now func() time.Time
}

// NewSessionManager creates a session manager in the Initializing state
func NewSessionManager(provider SessionProvider, profiles ProfileFetcher, opts SessionManagerOptions, log *logger.Logger) *SessionManager {
	if opts.SessionFetchTimeout <= 0 {
		opts.SessionFetchTimeout = 8 * time.Second
	}
	if opts.ProfileFetchTimeout <= 0 {
		opts.ProfileFetchTimeout = 5 * time.Second
	}
	if opts.StalenessThreshold <= 0 {
		opts.StalenessThreshold = 30 * time.Minute
	}
	return &SessionManager{
		provider: provider,
		profiles: profiles,
		opts:     opts,
		log:      log,
		state:    StateInitializing,
		now:      time.Now,
	}
}

// Start resolves the initial session state. A missing session, a provider
// error or a fetch timeout all resolve to Unauthenticated with identity
// cleared; only a live session moves the manager to Authenticated.
func (m *SessionManager) Start(ctx context.Context) error {
	fetchCtx, cancel := context.WithTimeout(ctx, m.opts.SessionFetchTimeout)
	defer cancel()

	session, err := m.provider.FetchSession(fetchCtx)
	if err != nil {
		m.clear()
		if errors.Is(err, context.DeadlineExceeded) {
			m.log.WithComponent("session").Warn("session fetch timed out, treating as unauthenticated")
			return apperrors.ErrSessionFetchTimeout
		}
		m.log.WithComponent("session").WithError(err).Warn("session fetch failed, treating as unauthenticated")
		return err
	}
	if session == nil {
		m.clear()
		return nil
	}

	// The profile is best-effort: a profile fetch failure leaves the
	// session authenticated with identity but no profile details.
	var profile *models.Profile
	if m.profiles != nil {
		profileCtx, cancelProfile := context.WithTimeout(ctx, m.opts.ProfileFetchTimeout)
		defer cancelProfile()
		profile, err = m.profiles.FetchProfile(profileCtx, session.ProfileID)
		if err != nil {
			m.log.WithComponent("session").WithError(err).Warn("profile fetch failed, continuing without profile")
			profile = nil
		}
	}

	m.mu.Lock()
	m.state = StateAuthenticated
	m.session = session
	m.profile = profile
	m.lastActivity = m.now()
	m.mu.Unlock()

	m.log.WithComponent("session").WithField("email", session.Email).Info("session established")
	return nil
}

// Run consumes provider session lifecycle events and re-syncs the managed
// state per event until the context is cancelled or the channel closes.
// Sign-out and a failed token refresh both force the Unauthenticated state;
// sign-in and a successful refresh re-resolve the session.
func (m *SessionManager) Run(ctx context.Context, events <-chan Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			m.handleEvent(ctx, event)
		}
	}
}

func (m *SessionManager) handleEvent(ctx context.Context, event Event) {
	log := m.log.WithComponent("session").WithField("event", string(event.Type))

	switch event.Type {
	case EventSignedOut, EventTokenRefreshFailed:
		m.clear()
		log.Info("session invalidated")
	case EventSignedIn, EventTokenRefreshed:
		if err := m.Start(ctx); err != nil {
			log.WithError(err).Warn("session re-sync failed")
		}
	default:
		log.Warn("ignoring unknown session event")
	}
}

// Touch records user activity, deferring the staleness refresh
func (m *SessionManager) Touch() {
	m.mu.Lock()
	m.lastActivity = m.now()
	m.mu.Unlock()
}

// OnVisible is called when the client returns to the foreground. A session
// idle past the staleness threshold is proactively re-resolved; a fresh one
// is left alone.
func (m *SessionManager) OnVisible(ctx context.Context) error {
	m.mu.RLock()
	state := m.state
	idle := m.now().Sub(m.lastActivity)
	m.mu.RUnlock()

	if state != StateAuthenticated {
		return nil
	}
	if idle < m.opts.StalenessThreshold {
		m.Touch()
		return nil
	}

	m.log.WithComponent("session").Info("stale session detected, refreshing")
	return m.Start(ctx)
}

// SignOut tears the session down and resolves to Unauthenticated
func (m *SessionManager) SignOut() {
	m.clear()
	m.log.WithComponent("session").Info("session terminated")
}

// State returns the current lifecycle state
func (m *SessionManager) State() SessionState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// CurrentSession returns the active session, or nil when unauthenticated
func (m *SessionManager) CurrentSession() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Profile returns the loaded profile, or nil when unavailable
func (m *SessionManager) Profile() *models.Profile {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.profile
}

func (m *SessionManager) clear() {
	m.mu.Lock()
	m.state = StateUnauthenticated
	m.session = nil
	m.profile = nil
	m.lastActivity = m.now()
	m.mu.Unlock()
}
