package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "pipeline-crm-backend/internal/errors"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PipelineService applies status transitions to contatos, including the
// win cascade that closes every other contato of the same caso
type PipelineService struct {
	contatoRepo repository.ContatoRepositoryInterface
	relRepo     repository.RelacionamentoRepositoryInterface
	validator   *validator.Validate
	now         func() time.Time
}

// Ensure PipelineService implements PipelineServiceInterface
var _ PipelineServiceInterface = (*PipelineService)(nil)

// NewPipelineService creates a new PipelineService
func NewPipelineService(contatoRepo repository.ContatoRepositoryInterface, relRepo repository.RelacionamentoRepositoryInterface, validator *validator.Validate) *PipelineService {
	return &PipelineService{
		contatoRepo: contatoRepo,
		relRepo:     relRepo,
		validator:   validator,
		now:         time.Now,
	}
}

// TransitionStatusRequest represents the payload for a status transition
type TransitionStatusRequest struct {
	Status       string     `json:"status" validate:"required"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
}

// TransitionStatusResponse reports the applied transition
type TransitionStatusResponse struct {
	ContatoID      string     `json:"contato_id"`
	Status         string     `json:"status"`
	ScheduledFor   *time.Time `json:"scheduled_for,omitempty"`
	SiblingsWon    bool       `json:"cascade_applied"`
	SiblingsClosed int64      `json:"siblings_closed"`
}

// UpdateScheduledDateRequest represents the payload for rescheduling
type UpdateScheduledDateRequest struct {
	ScheduledFor time.Time `json:"scheduled_for" validate:"required"`
}

// SaveNotesRequest represents the payload for overwriting notes
type SaveNotesRequest struct {
	Notes string `json:"notes"`
}

// SetContactedRequest represents the payload for the legacy contacted flag
type SetContactedRequest struct {
	Contacted bool `json:"contacted"`
}

// TransitionStatus validates and applies a pipeline status transition.
// A Won transition additionally closes the open siblings of the contato's
// caso; a contato with no caso link wins without any sibling writes.
func (s *PipelineService) TransitionStatus(contatoID uuid.UUID, req *TransitionStatusRequest) (*TransitionStatusResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.PipelineStatus(req.Status)
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}
	if status == models.StatusScheduled && req.ScheduledFor == nil {
		return nil, apperrors.ErrScheduledDateRequired
	}

	contato, err := s.contatoRepo.GetByID(contatoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContatoNotFound
		}
		return nil, fmt.Errorf("failed to get contato: %w", err)
	}

	now := s.now()

	if status != models.StatusWon {
		if err := s.contatoRepo.UpdateStatus(contato.ID, status, req.ScheduledFor, now); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContatoNotFound
			}
			return nil, fmt.Errorf("failed to update status: %w", err)
		}
		resp := &TransitionStatusResponse{
			ContatoID: contato.ID.String(),
			Status:    string(status),
		}
		if status == models.StatusScheduled {
			resp.ScheduledFor = req.ScheduledFor
		}
		return resp, nil
	}

	casoIDs, err := s.relRepo.GetCasoIDsByContatoID(contato.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve caso links: %w", err)
	}

	switch len(casoIDs) {
	case 0:
		// No caso link: the contato wins, nothing to cascade
		if err := s.contatoRepo.UpdateStatus(contato.ID, models.StatusWon, nil, now); err != nil {
			return nil, fmt.Errorf("failed to update status: %w", err)
		}
		return &TransitionStatusResponse{
			ContatoID: contato.ID.String(),
			Status:    string(models.StatusWon),
		}, nil
	case 1:
		note := fmt.Sprintf("\n[Auto-closed: Another relative won on %s]", now.Format("2006-01-02 15:04"))
		closed, err := s.contatoRepo.WinAndCloseSiblings(contato.ID, casoIDs[0], note, now)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrContatoNotFound
			}
			return nil, fmt.Errorf("failed to apply win cascade: %w", err)
		}
		return &TransitionStatusResponse{
			ContatoID:      contato.ID.String(),
			Status:         string(models.StatusWon),
			SiblingsWon:    true,
			SiblingsClosed: closed,
		}, nil
	default:
		return nil, apperrors.ErrContactLinkedToMultipleCases
	}
}

// UpdateScheduledDate rewrites the scheduled date of a contato that is
// currently in Scheduled status
func (s *PipelineService) UpdateScheduledDate(contatoID uuid.UUID, req *UpdateScheduledDateRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	contato, err := s.contatoRepo.GetByID(contatoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContatoNotFound
		}
		return fmt.Errorf("failed to get contato: %w", err)
	}
	if contato.Status != models.StatusScheduled {
		return apperrors.ErrNotScheduled
	}

	scheduledFor := req.ScheduledFor
	if err := s.contatoRepo.UpdateScheduledDate(contato.ID, &scheduledFor); err != nil {
		return fmt.Errorf("failed to update scheduled date: %w", err)
	}
	return nil
}

// SaveNotes overwrites the notes of a contato. Last write wins, including
// against cascade-appended audit lines.
func (s *PipelineService) SaveNotes(contatoID uuid.UUID, req *SaveNotesRequest) error {
	if err := s.contatoRepo.UpdateNotes(contatoID, req.Notes); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContatoNotFound
		}
		return fmt.Errorf("failed to save notes: %w", err)
	}
	return nil
}

// SetContacted flips the legacy contacted flag
func (s *PipelineService) SetContacted(contatoID uuid.UUID, req *SetContactedRequest) error {
	if err := s.contatoRepo.SetContacted(contatoID, req.Contacted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContatoNotFound
		}
		return fmt.Errorf("failed to update contacted flag: %w", err)
	}
	return nil
}

// ScheduleLabel derives the display label for a scheduled follow-up from
// the calendar-date difference between scheduledFor and now, ignoring
// time-of-day
func ScheduleLabel(scheduledFor, now time.Time) string {
	// Rebuild both dates at UTC midnight so the difference is an exact
	// multiple of 24h regardless of DST transitions in the local zone
	toDate := func(t time.Time) time.Time {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	days := int(toDate(scheduledFor).Sub(toDate(now.In(scheduledFor.Location()))).Hours() / 24)

	switch {
	case days == 0:
		return "contact today"
	case days == 1:
		return "contact tomorrow"
	case days > 1:
		return fmt.Sprintf("contact in %d days", days)
	case days == -1:
		return "overdue by 1 day"
	default:
		return fmt.Sprintf("overdue by %d days", -days)
	}
}
