package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	apperrors "pipeline-crm-backend/internal/errors"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
)

// EventType classifies session lifecycle events
type EventType string

const (
	EventSignedIn           EventType = "signed-in"
	EventSignedOut          EventType = "signed-out"
	EventTokenRefreshed     EventType = "token-refreshed"
	EventTokenRefreshFailed EventType = "token-refresh-failed"
)

// Event is a session lifecycle notification delivered to subscribers
type Event struct {
	Type      EventType `json:"type"`
	ProfileID string    `json:"profile_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	At        time.Time `json:"at"`
}

// RefreshTokenData stores information about an issued refresh token
type RefreshTokenData struct {
	ProfileID uuid.UUID `json:"profile_id"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Claims represents JWT token claims for an authenticated operator
type Claims struct {
	ProfileID string `json:"profile_id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// SignInRequest represents the credentials payload
type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse represents the response for sign-in and refresh
type TokenResponse struct {
	AccessToken  string          `json:"accessToken"`
	TokenType    string          `json:"tokenType"`
	ExpiresIn    int64           `json:"expiresIn"`
	RefreshToken string          `json:"refreshToken"`
	Profile      ProfileSnapshot `json:"profile"`
}

// ProfileSnapshot is the identity block returned alongside tokens
type ProfileSnapshot struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// Service provides credential authentication and token management
type Service struct {
	jwtSecret     string
	profileRepo   repository.ProfileRepositoryInterface
	refreshTokens map[string]*RefreshTokenData
	tokenMutex    sync.RWMutex
	subscribers   []chan Event
	subMutex      sync.Mutex
	now           func() time.Time
}

// NewService creates a new authentication service
func NewService(jwtSecret string, profileRepo repository.ProfileRepositoryInterface) (*Service, error) {
	if jwtSecret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	return &Service{
		jwtSecret:     jwtSecret,
		profileRepo:   profileRepo,
		refreshTokens: make(map[string]*RefreshTokenData),
		now:           time.Now,
	}, nil
}

// Subscribe returns a channel receiving session lifecycle events. Slow
// subscribers drop events rather than block sign-in.
func (s *Service) Subscribe() <-chan Event {
	s.subMutex.Lock()
	defer s.subMutex.Unlock()
	ch := make(chan Event, 16)
	s.subscribers = append(s.subscribers, ch)
	return ch
}

func (s *Service) emit(event Event) {
	s.subMutex.Lock()
	defer s.subMutex.Unlock()
	for _, ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SignIn verifies credentials and issues an access/refresh token pair
func (s *Service) SignIn(req *SignInRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	profile, err := s.profileRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if !profile.IsActive {
		return nil, apperrors.ErrProfileInactive
	}
	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	response, err := s.issueTokens(profile)
	if err != nil {
		return nil, err
	}

	s.emit(Event{
		Type:      EventSignedIn,
		ProfileID: profile.ID.String(),
		Email:     profile.Email,
		At:        s.now(),
	})
	return response, nil
}

// RefreshToken rotates a refresh token and issues a new JWT
func (s *Service) RefreshToken(refreshToken string) (*TokenResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		s.emit(Event{Type: EventTokenRefreshFailed, At: s.now()})
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if s.now().After(tokenData.ExpiresAt) {
		s.tokenMutex.Lock()
		delete(s.refreshTokens, refreshToken)
		s.tokenMutex.Unlock()
		s.emit(Event{Type: EventTokenRefreshFailed, Email: tokenData.Email, At: s.now()})
		return nil, apperrors.ErrRefreshTokenExpired
	}

	// Re-read the profile so role changes and deactivation take effect
	// on the next refresh
	profile, err := s.profileRepo.GetByID(tokenData.ProfileID)
	if err != nil {
		s.emit(Event{Type: EventTokenRefreshFailed, Email: tokenData.Email, At: s.now()})
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}
	if !profile.IsActive {
		s.emit(Event{Type: EventTokenRefreshFailed, Email: profile.Email, At: s.now()})
		return nil, apperrors.ErrProfileInactive
	}

	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()

	response, err := s.issueTokens(profile)
	if err != nil {
		return nil, err
	}

	s.emit(Event{
		Type:      EventTokenRefreshed,
		ProfileID: profile.ID.String(),
		Email:     profile.Email,
		At:        s.now(),
	})
	return response, nil
}

// FetchSession returns the most recently issued live session, or nil when
// no refresh token is outstanding. It makes the service usable as the
// SessionProvider behind a SessionManager.
func (s *Service) FetchSession(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.tokenMutex.RLock()
	defer s.tokenMutex.RUnlock()

	now := s.now()
	var latest *RefreshTokenData
	for _, tokenData := range s.refreshTokens {
		if now.After(tokenData.ExpiresAt) {
			continue
		}
		if latest == nil || tokenData.CreatedAt.After(latest.CreatedAt) {
			latest = tokenData
		}
	}
	if latest == nil {
		return nil, nil
	}

	return &Session{
		ProfileID: latest.ProfileID,
		Email:     latest.Email,
		IssuedAt:  latest.CreatedAt,
	}, nil
}

// SignOut revokes a refresh token
func (s *Service) SignOut(refreshToken string) {
	s.tokenMutex.Lock()
	tokenData, exists := s.refreshTokens[refreshToken]
	if exists {
		delete(s.refreshTokens, refreshToken)
	}
	s.tokenMutex.Unlock()

	event := Event{Type: EventSignedOut, At: s.now()}
	if exists {
		event.ProfileID = tokenData.ProfileID.String()
		event.Email = tokenData.Email
	}
	s.emit(event)
}

func (s *Service) issueTokens(profile *models.Profile) (*TokenResponse, error) {
	jwtToken, err := s.GenerateJWT(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		ProfileID: profile.ID,
		Email:     profile.Email,
		ExpiresAt: s.now().Add(refreshTokenTTL),
		CreatedAt: s.now(),
	}
	s.tokenMutex.Unlock()

	return &TokenResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile: ProfileSnapshot{
			ID:       profile.ID.String(),
			Email:    profile.Email,
			FullName: profile.FullName,
			Role:     string(profile.Role),
		},
	}, nil
}

// GenerateJWT creates a signed access token for the profile
func (s *Service) GenerateJWT(profile *models.Profile) (string, error) {
	now := s.now()
	claims := &Claims{
		ProfileID: profile.ID.String(),
		Email:     profile.Email,
		FullName:  profile.FullName,
		Role:      string(profile.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "pipeline-crm-backend",
			Subject:   profile.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateJWT validates and parses an access token
func (s *Service) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}
