package auth

import (
	"context"
	"testing"
	"time"

	"pipeline-crm-backend/internal/database/models"
	apperrors "pipeline-crm-backend/internal/errors"
	"pipeline-crm-backend/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthServiceTestSuite defines the test suite for the auth Service
type AuthServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockProfileRepo *mocks.MockProfileRepositoryInterface
	authService     *Service
	profile         *models.Profile
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProfileRepo = mocks.NewMockProfileRepositoryInterface(suite.ctrl)

	var err error
	suite.authService, err = NewService("test-jwt-secret", suite.mockProfileRepo)
	require.NoError(suite.T(), err)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(suite.T(), err)
	suite.profile = &models.Profile{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "operator@test.com",
		FullName:     "Test Operator",
		Role:         models.RoleOperador,
		PasswordHash: string(hash),
		IsActive:     true,
	}
}

// TearDownTest cleans up after each test
func (suite *AuthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestNewServiceRequiresSecret tests that an empty secret is rejected
func (suite *AuthServiceTestSuite) TestNewServiceRequiresSecret() {
	svc, err := NewService("", suite.mockProfileRepo)
	assert.Nil(suite.T(), svc)
	assert.Error(suite.T(), err)
}

// TestSignInSuccess tests signing in with valid credentials
func (suite *AuthServiceTestSuite) TestSignInSuccess() {
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)

	resp, err := suite.authService.SignIn(&SignInRequest{
		Email:    "  Operator@Test.com ",
		Password: "correct-password",
	})

	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.AccessToken)
	assert.NotEmpty(suite.T(), resp.RefreshToken)
	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.Equal(suite.T(), int64(3600), resp.ExpiresIn)
	assert.Equal(suite.T(), suite.profile.ID.String(), resp.Profile.ID)
	assert.Equal(suite.T(), "operador", resp.Profile.Role)

	claims, err := suite.authService.ValidateJWT(resp.AccessToken)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.profile.ID.String(), claims.ProfileID)
	assert.Equal(suite.T(), "operator@test.com", claims.Email)
	assert.Equal(suite.T(), "operador", claims.Role)
}

// TestSignInWrongPassword tests that a bad password yields invalid credentials
func (suite *AuthServiceTestSuite) TestSignInWrongPassword() {
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)

	resp, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "wrong-password",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestSignInUnknownEmail tests that a missing profile yields invalid credentials,
// not a not-found error that would leak which emails exist
func (suite *AuthServiceTestSuite) TestSignInUnknownEmail() {
	suite.mockProfileRepo.EXPECT().GetByEmail("nobody@test.com").Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.authService.SignIn(&SignInRequest{
		Email:    "nobody@test.com",
		Password: "whatever",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestSignInInactiveProfile tests that deactivated operators cannot sign in
func (suite *AuthServiceTestSuite) TestSignInInactiveProfile() {
	suite.profile.IsActive = false
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)

	resp, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "correct-password",
	})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProfileInactive)
}

// TestRefreshTokenRotation tests that refresh consumes the old token
// and issues a new pair
func (suite *AuthServiceTestSuite) TestRefreshTokenRotation() {
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)
	signIn, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "correct-password",
	})
	require.NoError(suite.T(), err)

	suite.mockProfileRepo.EXPECT().GetByID(suite.profile.ID).Return(suite.profile, nil)
	refreshed, err := suite.authService.RefreshToken(signIn.RefreshToken)
	require.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), signIn.RefreshToken, refreshed.RefreshToken)

	// The consumed token must not be replayable
	replayed, err := suite.authService.RefreshToken(signIn.RefreshToken)
	assert.Nil(suite.T(), replayed)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestRefreshTokenExpired tests that an expired refresh token is revoked
func (suite *AuthServiceTestSuite) TestRefreshTokenExpired() {
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)
	signIn, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "correct-password",
	})
	require.NoError(suite.T(), err)

	suite.authService.now = func() time.Time {
		return time.Now().Add(refreshTokenTTL + time.Hour)
	}

	refreshed, err := suite.authService.RefreshToken(signIn.RefreshToken)
	assert.Nil(suite.T(), refreshed)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRefreshTokenExpired)

	// Expiry removes the token entirely
	suite.authService.now = time.Now
	refreshed, err = suite.authService.RefreshToken(signIn.RefreshToken)
	assert.Nil(suite.T(), refreshed)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestRefreshTokenDeactivatedProfile tests that refresh re-checks the profile
func (suite *AuthServiceTestSuite) TestRefreshTokenDeactivatedProfile() {
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)
	signIn, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "correct-password",
	})
	require.NoError(suite.T(), err)

	suite.profile.IsActive = false
	suite.mockProfileRepo.EXPECT().GetByID(suite.profile.ID).Return(suite.profile, nil)

	refreshed, err := suite.authService.RefreshToken(signIn.RefreshToken)
	assert.Nil(suite.T(), refreshed)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProfileInactive)
}

// TestSignOutRevokesRefreshToken tests that sign-out invalidates the token
func (suite *AuthServiceTestSuite) TestSignOutRevokesRefreshToken() {
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)
	signIn, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "correct-password",
	})
	require.NoError(suite.T(), err)

	suite.authService.SignOut(signIn.RefreshToken)

	refreshed, err := suite.authService.RefreshToken(signIn.RefreshToken)
	assert.Nil(suite.T(), refreshed)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRefreshToken)
}

// TestSubscribeReceivesLifecycleEvents tests the event stream for the
// sign-in, refresh and sign-out transitions
func (suite *AuthServiceTestSuite) TestSubscribeReceivesLifecycleEvents() {
	events := suite.authService.Subscribe()

	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)
	signIn, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "correct-password",
	})
	require.NoError(suite.T(), err)

	suite.mockProfileRepo.EXPECT().GetByID(suite.profile.ID).Return(suite.profile, nil)
	refreshed, err := suite.authService.RefreshToken(signIn.RefreshToken)
	require.NoError(suite.T(), err)

	suite.authService.SignOut(refreshed.RefreshToken)

	expected := []EventType{EventSignedIn, EventTokenRefreshed, EventSignedOut}
	for _, want := range expected {
		select {
		case event := <-events:
			assert.Equal(suite.T(), want, event.Type)
			assert.Equal(suite.T(), suite.profile.ID.String(), event.ProfileID)
		case <-time.After(time.Second):
			suite.T().Fatalf("timed out waiting for %s event", want)
		}
	}
}

// TestValidateJWTRejectsForeignSignature tests that tokens signed with a
// different secret are rejected
func (suite *AuthServiceTestSuite) TestValidateJWTRejectsForeignSignature() {
	other, err := NewService("another-secret", suite.mockProfileRepo)
	require.NoError(suite.T(), err)

	token, err := other.GenerateJWT(suite.profile)
	require.NoError(suite.T(), err)

	claims, err := suite.authService.ValidateJWT(token)
	assert.Nil(suite.T(), claims)
	assert.Error(suite.T(), err)
}

// TestFetchSessionEmpty tests that no outstanding token means no session
func (suite *AuthServiceTestSuite) TestFetchSessionEmpty() {
	session, err := suite.authService.FetchSession(context.Background())
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), session)
}

// TestFetchSessionReturnsLatestLiveSession tests that the session reflects
// the most recent sign-in and that sign-out removes it
func (suite *AuthServiceTestSuite) TestFetchSessionReturnsLatestLiveSession() {
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)

	resp, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "correct-password",
	})
	require.NoError(suite.T(), err)

	session, err := suite.authService.FetchSession(context.Background())
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), session)
	assert.Equal(suite.T(), suite.profile.ID, session.ProfileID)
	assert.Equal(suite.T(), "operator@test.com", session.Email)

	suite.authService.SignOut(resp.RefreshToken)

	session, err = suite.authService.FetchSession(context.Background())
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), session)
}

// TestFetchSessionSkipsExpiredTokens tests that expired refresh tokens do
// not resurrect a session
func (suite *AuthServiceTestSuite) TestFetchSessionSkipsExpiredTokens() {
	suite.mockProfileRepo.EXPECT().GetByEmail("operator@test.com").Return(suite.profile, nil)

	_, err := suite.authService.SignIn(&SignInRequest{
		Email:    "operator@test.com",
		Password: "correct-password",
	})
	require.NoError(suite.T(), err)

	suite.authService.now = func() time.Time {
		return time.Now().Add(refreshTokenTTL + time.Hour)
	}

	session, err := suite.authService.FetchSession(context.Background())
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), session)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
