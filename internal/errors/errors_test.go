package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "contato"}
		assert.Equal(t, "contato not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "contato"}
		err2 := &NotFoundError{Entity: "contato"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "contato"}
		err2 := &NotFoundError{Entity: "caso"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrContatoNotFound, ErrContatoNotFound))
		assert.False(t, errors.Is(ErrContatoNotFound, ErrCasoNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrCampaignNotFound))
		assert.False(t, IsNotFound(ErrRelacionamentoExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "profile", Context: "with this email"}
		assert.Equal(t, "profile already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "profile"}
		assert.Equal(t, "profile already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "relacionamento", Context: "between this caso and contato"}
		assert.True(t, errors.Is(err1, ErrRelacionamentoExists))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrProfileExists))
		assert.False(t, IsAlreadyExists(ErrProfileNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "scheduled_for", Message: "must be in the future"}
		assert.Equal(t, "validation error: scheduled_for - must be in the future", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "file too large"}
		assert.Equal(t, "validation error: file too large", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrContatoNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrInvalidCredentials))
		assert.True(t, IsAuthentication(ErrProfileInactive))
		assert.False(t, IsAuthentication(ErrInsufficientRole))
	})

	t.Run("IsAuthorization helper", func(t *testing.T) {
		assert.True(t, IsAuthorization(ErrInsufficientRole))
		assert.False(t, IsAuthorization(ErrInvalidCredentials))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})
}

func TestPipelineErrors(t *testing.T) {
	t.Run("Transition errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidStatus)
		assert.Error(t, ErrScheduledDateRequired)
		assert.Error(t, ErrNotScheduled)
		assert.Error(t, ErrContactLinkedToMultipleCases)
	})

	t.Run("Operational errors", func(t *testing.T) {
		assert.Error(t, ErrInvalidPaginationParams)
		assert.Error(t, ErrCampaignHasNoLeads)
		assert.Error(t, ErrStorageProviderNotConfigured)
		assert.Error(t, ErrDirectoryProviderNotConfigured)
	})
}
