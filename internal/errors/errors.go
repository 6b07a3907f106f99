package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in campaign"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrCasoNotFound           = &NotFoundError{Entity: "caso"}
	ErrContatoNotFound        = &NotFoundError{Entity: "contato"}
	ErrRelacionamentoNotFound = &NotFoundError{Entity: "relacionamento"}
	ErrCampaignNotFound       = &NotFoundError{Entity: "campaign"}
	ErrProfileNotFound        = &NotFoundError{Entity: "profile"}
	ErrCaseFileNotFound       = &NotFoundError{Entity: "case file"}
)

// Already Exists Errors
var (
	ErrProfileExists        = &AlreadyExistsError{Entity: "profile", Context: "with this email"}
	ErrRelacionamentoExists = &AlreadyExistsError{Entity: "relacionamento", Context: "between this caso and contato"}
)

// Pipeline Errors
var (
	ErrInvalidStatus                  = errors.New("invalid pipeline status")
	ErrScheduledDateRequired          = errors.New("scheduled date is required when moving to Scheduled")
	ErrNotScheduled                   = errors.New("contato is not in Scheduled status")
	ErrContactLinkedToMultipleCases   = errors.New("contato is linked to more than one caso")
	ErrInvalidPaginationParams        = errors.New("invalid pagination parameters")
	ErrInvalidDateRange               = errors.New("date range end precedes start")
	ErrCampaignHasNoLeads             = errors.New("campaign has no leads to export")
	ErrStorageProviderNotConfigured   = errors.New("storage provider is not configured")
	ErrDirectoryProviderNotConfigured = errors.New("directory provider is not configured")
)

// Authentication Errors
var (
	ErrInvalidCredentials  = &AuthenticationError{Message: "invalid email or password"}
	ErrProfileInactive     = &AuthenticationError{Message: "profile is deactivated"}
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
	ErrSessionFetchTimeout = errors.New("session retrieval timed out")

	ErrInsufficientRole = &AuthorizationError{Message: "role does not permit this operation"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}
