package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	apperrors "pipeline-crm-backend/internal/errors"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/repository"
	"pipeline-crm-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxCaseFileSize caps uploads at 25 MB
const maxCaseFileSize = 25 << 20

// CaseFileService manages documents attached to casos
type CaseFileService struct {
	fileRepo repository.CaseFileRepositoryInterface
	casoRepo repository.CasoRepositoryInterface
	store    storage.Provider
}

// Ensure CaseFileService implements CaseFileServiceInterface
var _ CaseFileServiceInterface = (*CaseFileService)(nil)

// NewCaseFileService creates a new CaseFileService
func NewCaseFileService(fileRepo repository.CaseFileRepositoryInterface, casoRepo repository.CasoRepositoryInterface, store storage.Provider) *CaseFileService {
	return &CaseFileService{
		fileRepo: fileRepo,
		casoRepo: casoRepo,
		store:    store,
	}
}

// CaseFileResponse represents an uploaded document in API responses
type CaseFileResponse struct {
	ID          string    `json:"id"`
	CasoID      string    `json:"caso_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	SizeBytes   int64     `json:"size_bytes"`
	UploadedBy  string    `json:"uploaded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CaseFileDownload carries an open object stream back to the handler.
// The caller owns closing Body.
type CaseFileDownload struct {
	Body        io.ReadCloser
	ContentType string
	FileName    string
}

// Upload stores a document under the caso's prefix and records it
func (s *CaseFileService) Upload(ctx context.Context, casoID, uploadedBy uuid.UUID, file *multipart.FileHeader) (*CaseFileResponse, error) {
	if !s.store.IsConfigured() {
		return nil, apperrors.ErrStorageProviderNotConfigured
	}
	if file.Size > maxCaseFileSize {
		return nil, apperrors.NewValidationError("file", "file exceeds the 25MB limit")
	}

	if _, err := s.casoRepo.GetByID(casoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCasoNotFound
		}
		return nil, fmt.Errorf("failed to get caso: %w", err)
	}

	key := storage.GenerateCaseFileKey(casoID.String(), file.Filename)
	result, err := s.store.Upload(ctx, file, key)
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	record := &models.CaseFile{
		CasoID:      casoID,
		StorageKey:  result.Key,
		FileName:    file.Filename,
		ContentType: result.MimeType,
		SizeBytes:   result.FileSize,
		UploadedBy:  uploadedBy,
	}
	if err := s.fileRepo.Create(record); err != nil {
		// Roll back the stored object so no orphan remains
		_ = s.store.Delete(ctx, result.Key)
		return nil, fmt.Errorf("failed to record file: %w", err)
	}

	resp := toCaseFileResponse(record)
	return &resp, nil
}

// List retrieves the documents attached to a caso
func (s *CaseFileService) List(casoID uuid.UUID) ([]CaseFileResponse, error) {
	if _, err := s.casoRepo.GetByID(casoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCasoNotFound
		}
		return nil, fmt.Errorf("failed to get caso: %w", err)
	}

	files, err := s.fileRepo.GetByCasoID(casoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	responses := make([]CaseFileResponse, 0, len(files))
	for i := range files {
		responses = append(responses, toCaseFileResponse(&files[i]))
	}
	return responses, nil
}

// Download opens the stored object for streaming back to the client
func (s *CaseFileService) Download(ctx context.Context, fileID uuid.UUID) (*CaseFileDownload, error) {
	record, err := s.fileRepo.GetByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCaseFileNotFound
		}
		return nil, fmt.Errorf("failed to get file record: %w", err)
	}

	body, contentType, err := s.store.Get(ctx, record.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to open stored object: %w", err)
	}
	if record.ContentType != "" {
		contentType = record.ContentType
	}

	return &CaseFileDownload{
		Body:        body,
		ContentType: contentType,
		FileName:    record.FileName,
	}, nil
}

// Delete removes both the stored object and its record
func (s *CaseFileService) Delete(ctx context.Context, fileID uuid.UUID) error {
	record, err := s.fileRepo.GetByID(fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrCaseFileNotFound
		}
		return fmt.Errorf("failed to get file record: %w", err)
	}

	if err := s.store.Delete(ctx, record.StorageKey); err != nil {
		return fmt.Errorf("failed to delete stored object: %w", err)
	}
	if err := s.fileRepo.Delete(fileID); err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}
	return nil
}

func toCaseFileResponse(f *models.CaseFile) CaseFileResponse {
	resp := CaseFileResponse{
		ID:          f.ID.String(),
		CasoID:      f.CasoID.String(),
		FileName:    f.FileName,
		ContentType: f.ContentType,
		SizeBytes:   f.SizeBytes,
		CreatedAt:   f.CreatedAt,
	}
	if f.UploadedBy != uuid.Nil {
		resp.UploadedBy = f.UploadedBy.String()
	}
	return resp
}
