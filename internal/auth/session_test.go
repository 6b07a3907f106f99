package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"pipeline-crm-backend/internal/database/models"
	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeSessionProvider struct {
	session    *Session
	err        error
	delay      time.Duration
	fetchCount int
}

func (f *fakeSessionProvider) FetchSession(ctx context.Context) (*Session, error) {
	f.fetchCount++
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return f.session, f.err
}

type fakeProfileFetcher struct {
	profile *models.Profile
	err     error
}

func (f *fakeProfileFetcher) FetchProfile(ctx context.Context, profileID uuid.UUID) (*models.Profile, error) {
	return f.profile, f.err
}

// SessionManagerTestSuite defines the test suite for SessionManager
type SessionManagerTestSuite struct {
	suite.Suite
	provider *fakeSessionProvider
	profiles *fakeProfileFetcher
	session  *Session
	profile  *models.Profile
}

// SetupTest sets up the test suite
func (suite *SessionManagerTestSuite) SetupTest() {
	profileID := uuid.New()
	suite.session = &Session{
		ProfileID: profileID,
		Email:     "operator@test.com",
		Token:     "session-token",
		IssuedAt:  time.Now(),
	}
	suite.profile = &models.Profile{
		BaseModel: models.BaseModel{ID: profileID},
		Email:     "operator@test.com",
		FullName:  "Test Operator",
		Role:      models.RoleOperador,
		IsActive:  true,
	}
	suite.provider = &fakeSessionProvider{session: suite.session}
	suite.profiles = &fakeProfileFetcher{profile: suite.profile}
}

func (suite *SessionManagerTestSuite) newManager(opts SessionManagerOptions) *SessionManager {
	return NewSessionManager(suite.provider, suite.profiles, opts, logger.NewDevelopment("debug"))
}

// TestStartResolvesAuthenticated tests the happy path
func (suite *SessionManagerTestSuite) TestStartResolvesAuthenticated() {
	manager := suite.newManager(SessionManagerOptions{})
	assert.Equal(suite.T(), StateInitializing, manager.State())

	err := manager.Start(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), StateAuthenticated, manager.State())
	assert.Equal(suite.T(), suite.session.ProfileID, manager.CurrentSession().ProfileID)
	assert.Equal(suite.T(), "Test Operator", manager.Profile().FullName)
}

// TestStartWithoutSessionResolvesUnauthenticated tests that a nil session
// resolves cleanly instead of staying in Initializing
func (suite *SessionManagerTestSuite) TestStartWithoutSessionResolvesUnauthenticated() {
	suite.provider.session = nil
	manager := suite.newManager(SessionManagerOptions{})

	err := manager.Start(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), StateUnauthenticated, manager.State())
	assert.Nil(suite.T(), manager.CurrentSession())
	assert.Nil(suite.T(), manager.Profile())
}

// TestStartTimeoutResolvesUnauthenticated tests that a slow provider is cut
// off and the state still resolves
func (suite *SessionManagerTestSuite) TestStartTimeoutResolvesUnauthenticated() {
	suite.provider.delay = 200 * time.Millisecond
	manager := suite.newManager(SessionManagerOptions{
		SessionFetchTimeout: 20 * time.Millisecond,
	})

	err := manager.Start(context.Background())

	assert.ErrorIs(suite.T(), err, apperrors.ErrSessionFetchTimeout)
	assert.Equal(suite.T(), StateUnauthenticated, manager.State())
	assert.Nil(suite.T(), manager.CurrentSession())
}

// TestStartProviderErrorResolvesUnauthenticated tests provider failures
func (suite *SessionManagerTestSuite) TestStartProviderErrorResolvesUnauthenticated() {
	suite.provider.session = nil
	suite.provider.err = errors.New("store unavailable")
	manager := suite.newManager(SessionManagerOptions{})

	err := manager.Start(context.Background())

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), StateUnauthenticated, manager.State())
}

// TestStartProfileFetchFailureKeepsSession tests that the profile load is
// best-effort
func (suite *SessionManagerTestSuite) TestStartProfileFetchFailureKeepsSession() {
	suite.profiles.profile = nil
	suite.profiles.err = errors.New("profiles table unreachable")
	manager := suite.newManager(SessionManagerOptions{})

	err := manager.Start(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), StateAuthenticated, manager.State())
	assert.NotNil(suite.T(), manager.CurrentSession())
	assert.Nil(suite.T(), manager.Profile())
}

// TestOnVisibleFreshSessionSkipsRefetch tests that recent activity defers
// the staleness refresh
func (suite *SessionManagerTestSuite) TestOnVisibleFreshSessionSkipsRefetch() {
	manager := suite.newManager(SessionManagerOptions{
		StalenessThreshold: 30 * time.Minute,
	})
	require.NoError(suite.T(), manager.Start(context.Background()))
	require.Equal(suite.T(), 1, suite.provider.fetchCount)

	err := manager.OnVisible(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, suite.provider.fetchCount)
	assert.Equal(suite.T(), StateAuthenticated, manager.State())
}

// TestOnVisibleStaleSessionRefetches tests that idling past the threshold
// re-resolves the session
func (suite *SessionManagerTestSuite) TestOnVisibleStaleSessionRefetches() {
	manager := suite.newManager(SessionManagerOptions{
		StalenessThreshold: 30 * time.Minute,
	})
	require.NoError(suite.T(), manager.Start(context.Background()))
	require.Equal(suite.T(), 1, suite.provider.fetchCount)

	manager.now = func() time.Time {
		return time.Now().Add(time.Hour)
	}

	err := manager.OnVisible(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, suite.provider.fetchCount)
	assert.Equal(suite.T(), StateAuthenticated, manager.State())
}

// TestOnVisibleUnauthenticatedIsNoop tests that a signed-out manager stays put
func (suite *SessionManagerTestSuite) TestOnVisibleUnauthenticatedIsNoop() {
	suite.provider.session = nil
	manager := suite.newManager(SessionManagerOptions{})
	require.NoError(suite.T(), manager.Start(context.Background()))
	require.Equal(suite.T(), 1, suite.provider.fetchCount)

	err := manager.OnVisible(context.Background())

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, suite.provider.fetchCount)
	assert.Equal(suite.T(), StateUnauthenticated, manager.State())
}

// TestSignOutClearsIdentity tests the teardown path
func (suite *SessionManagerTestSuite) TestSignOutClearsIdentity() {
	manager := suite.newManager(SessionManagerOptions{})
	require.NoError(suite.T(), manager.Start(context.Background()))

	manager.SignOut()

	assert.Equal(suite.T(), StateUnauthenticated, manager.State())
	assert.Nil(suite.T(), manager.CurrentSession())
	assert.Nil(suite.T(), manager.Profile())
}

// TestRunRefreshFailureForcesSignOut tests that a failed token refresh
// event tears the authenticated session down
func (suite *SessionManagerTestSuite) TestRunRefreshFailureForcesSignOut() {
	manager := suite.newManager(SessionManagerOptions{})
	require.NoError(suite.T(), manager.Start(context.Background()))
	require.Equal(suite.T(), StateAuthenticated, manager.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan Event, 1)
	go manager.Run(ctx, events)

	events <- Event{Type: EventTokenRefreshFailed, At: time.Now()}

	assert.Eventually(suite.T(), func() bool {
		return manager.State() == StateUnauthenticated
	}, time.Second, 10*time.Millisecond)
	assert.Nil(suite.T(), manager.CurrentSession())
	assert.Nil(suite.T(), manager.Profile())
}

// TestRunSignedOutEventClearsIdentity tests the sign-out event path
func (suite *SessionManagerTestSuite) TestRunSignedOutEventClearsIdentity() {
	manager := suite.newManager(SessionManagerOptions{})
	require.NoError(suite.T(), manager.Start(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan Event, 1)
	go manager.Run(ctx, events)

	events <- Event{Type: EventSignedOut, At: time.Now()}

	assert.Eventually(suite.T(), func() bool {
		return manager.State() == StateUnauthenticated
	}, time.Second, 10*time.Millisecond)
}

// TestRunSignedInEventResyncsSession tests that a sign-in event resolves
// an unauthenticated manager against the provider again
func (suite *SessionManagerTestSuite) TestRunSignedInEventResyncsSession() {
	suite.provider.session = nil
	manager := suite.newManager(SessionManagerOptions{})
	require.NoError(suite.T(), manager.Start(context.Background()))
	require.Equal(suite.T(), StateUnauthenticated, manager.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := make(chan Event, 1)
	go manager.Run(ctx, events)

	suite.provider.session = suite.session
	events <- Event{Type: EventSignedIn, ProfileID: suite.session.ProfileID.String(), At: time.Now()}

	assert.Eventually(suite.T(), func() bool {
		return manager.State() == StateAuthenticated
	}, time.Second, 10*time.Millisecond)
	assert.Equal(suite.T(), suite.session.ProfileID, manager.CurrentSession().ProfileID)
}

// TestRunStopsWhenChannelCloses tests that a closed event channel ends the loop
func (suite *SessionManagerTestSuite) TestRunStopsWhenChannelCloses() {
	manager := suite.newManager(SessionManagerOptions{})
	events := make(chan Event)
	done := make(chan struct{})

	go func() {
		manager.Run(context.Background(), events)
		close(done)
	}()
	close(events)

	select {
	case <-done:
	case <-time.After(time.Second):
		suite.T().Fatal("Run did not return after the event channel closed")
	}
}

// TestRunConsumesServiceEvents tests the full wiring: a rejected refresh
// token on the auth service forces the subscribed manager to sign out
func (suite *SessionManagerTestSuite) TestRunConsumesServiceEvents() {
	svc, err := NewService("test-secret", nil)
	require.NoError(suite.T(), err)
	events := svc.Subscribe()

	manager := suite.newManager(SessionManagerOptions{})
	require.NoError(suite.T(), manager.Start(context.Background()))
	require.Equal(suite.T(), StateAuthenticated, manager.State())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go manager.Run(ctx, events)

	_, err = svc.RefreshToken("no-such-token")
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)

	assert.Eventually(suite.T(), func() bool {
		return manager.State() == StateUnauthenticated
	}, time.Second, 10*time.Millisecond)
}

// TestSessionManagerTestSuite runs the test suite
func TestSessionManagerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionManagerTestSuite))
}
