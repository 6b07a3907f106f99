package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "pipeline-crm-backend/internal/errors"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProfileService provides operator profile management
type ProfileService struct {
	profileRepo repository.ProfileRepositoryInterface
	validator   *validator.Validate
}

// Ensure ProfileService implements ProfileServiceInterface
var _ ProfileServiceInterface = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo repository.ProfileRepositoryInterface, validator *validator.Validate) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		validator:   validator,
	}
}

// ProfileResponse represents a profile in API responses
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateProfileRequest represents the payload for creating a profile
type CreateProfileRequest struct {
	Email    string `json:"email" validate:"required,email,max=200"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin empresa supervisor operador"`
}

// UpdateProfileRequest represents the payload for updating a profile
type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,min=1,max=200"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin empresa supervisor operador"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ChangePasswordRequest represents the payload for a password change
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
}

// CreateProfile validates and creates a new profile. Only admins may
// provision profiles.
func (s *ProfileService) CreateProfile(role models.ProfileRole, req *CreateProfileRequest) (*ProfileResponse, error) {
	if role != models.RoleAdmin {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.profileRepo.GetByEmail(email); err == nil {
		return nil, apperrors.ErrProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check profile email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newRole := models.RoleOperador
	if req.Role != "" {
		newRole = models.ProfileRole(req.Role)
	}

	profile := &models.Profile{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         newRole,
		IsActive:     true,
	}

	if err := s.profileRepo.Create(profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	resp := toProfileResponse(profile)
	return &resp, nil
}

// GetProfile retrieves a profile by ID
func (s *ProfileService) GetProfile(id uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	resp := toProfileResponse(profile)
	return &resp, nil
}

// ListProfiles retrieves profiles with pagination. Admin only.
func (s *ProfileService) ListProfiles(role models.ProfileRole, limit, offset int) ([]ProfileResponse, int64, error) {
	if role != models.RoleAdmin {
		return nil, 0, apperrors.ErrInsufficientRole
	}
	if limit <= 0 || limit > 200 || offset < 0 {
		return nil, 0, apperrors.ErrInvalidPaginationParams
	}

	profiles, total, err := s.profileRepo.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list profiles: %w", err)
	}

	responses := make([]ProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, toProfileResponse(&profiles[i]))
	}
	return responses, total, nil
}

// UpdateProfile applies a partial update to a profile. Admin only.
func (s *ProfileService) UpdateProfile(role models.ProfileRole, id uuid.UUID, req *UpdateProfileRequest) (*ProfileResponse, error) {
	if role != models.RoleAdmin {
		return nil, apperrors.ErrInsufficientRole
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Role != nil {
		profile.Role = models.ProfileRole(*req.Role)
	}
	if req.IsActive != nil {
		profile.IsActive = *req.IsActive
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	resp := toProfileResponse(profile)
	return &resp, nil
}

// ChangePassword verifies the current password before writing a new hash
func (s *ProfileService) ChangePassword(id uuid.UUID, req *ChangePasswordRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	profile, err := s.profileRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	profile.PasswordHash = string(hash)
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Update(profile); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// DeleteProfile deletes a profile. Admin only.
func (s *ProfileService) DeleteProfile(role models.ProfileRole, id uuid.UUID) error {
	if role != models.RoleAdmin {
		return apperrors.ErrInsufficientRole
	}
	if _, err := s.profileRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProfileNotFound
		}
		return fmt.Errorf("failed to get profile: %w", err)
	}
	if err := s.profileRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	return nil
}

func toProfileResponse(p *models.Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID.String(),
		Email:     p.Email,
		FullName:  p.FullName,
		Role:      string(p.Role),
		IsActive:  p.IsActive,
		CreatedAt: p.CreatedAt,
	}
}
