package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	apperrors "pipeline-crm-backend/internal/errors"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// ExportService renders campaign lead lists as xlsx workbooks
type ExportService struct {
	campaignRepo repository.CampaignRepositoryInterface
}

// Ensure ExportService implements ExportServiceInterface
var _ ExportServiceInterface = (*ExportService)(nil)

// NewExportService creates a new ExportService
func NewExportService(campaignRepo repository.CampaignRepositoryInterface) *ExportService {
	return &ExportService{campaignRepo: campaignRepo}
}

var leadExportHeader = []string{
	"Nome",
	"CPF",
	"Telefones",
	"Origem",
	"Status",
	"Agendado Para",
	"Notas",
}

// ExportResult carries the rendered workbook and its download filename
type ExportResult struct {
	FileName string
	Content  []byte
}

// ExportCampaignLeads renders the enrolled contatos of a campaign as an
// xlsx workbook, one row per contato
func (s *ExportService) ExportCampaignLeads(campaignID uuid.UUID) (*ExportResult, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCampaignNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	contatos, err := s.campaignRepo.GetLeadContatos(campaignID)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign leads: %w", err)
	}
	if len(contatos) == 0 {
		return nil, apperrors.ErrCampaignHasNoLeads
	}

	content, err := renderLeadWorkbook(campaign.Name, contatos)
	if err != nil {
		return nil, err
	}

	return &ExportResult{
		FileName: fmt.Sprintf("leads_%s.xlsx", sanitizeFileName(campaign.Name)),
		Content:  content,
	}, nil
}

func renderLeadWorkbook(sheetName string, contatos []models.Contato) ([]byte, error) {
	f := excelize.NewFile()

	if len(sheetName) > 31 {
		// Excel caps sheet names at 31 characters
		sheetName = sheetName[:31]
	}
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, header := range leadExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to set header style: %w", err)
		}
	}

	for rowIdx := range contatos {
		c := &contatos[rowIdx]
		scheduled := ""
		if c.ScheduledFor != nil {
			scheduled = c.ScheduledFor.Format("2006-01-02 15:04")
		}
		values := []interface{}{
			c.Nome,
			c.CPF,
			strings.Join(c.Phones(), ", "),
			c.Origem,
			string(c.Status),
			scheduled,
			c.Notes,
		}
		for colIdx, value := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				f.Close()
				return nil, fmt.Errorf("failed to set cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}

	return buf.Bytes(), nil
}

func sanitizeFileName(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "campaign"
	}
	return b.String()
}
