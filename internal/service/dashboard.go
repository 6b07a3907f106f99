package service

import (
	"fmt"
	"time"

	apperrors "pipeline-crm-backend/internal/errors"

	"pipeline-crm-backend/internal/database/models"
	"pipeline-crm-backend/internal/repository"
)

// DashboardService aggregates read-side views: summary counters, the
// per-status kanban board and recent caso activity
type DashboardService struct {
	casoRepo    repository.CasoRepositoryInterface
	contatoRepo repository.ContatoRepositoryInterface
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(casoRepo repository.CasoRepositoryInterface, contatoRepo repository.ContatoRepositoryInterface) *DashboardService {
	return &DashboardService{
		casoRepo:    casoRepo,
		contatoRepo: contatoRepo,
	}
}

// DashboardSummaryResponse is the headline counter block
type DashboardSummaryResponse struct {
	TotalCasos     int64            `json:"total_casos"`
	TotalContatos  int64            `json:"total_contatos"`
	ContactedCount int64            `json:"contacted_count"`
	StageCounts    map[string]int64 `json:"stage_counts"`
	RecentCasos    []CasoResponse   `json:"recent_casos"`
}

// KanbanCardResponse is a single card on the pipeline board
type KanbanCardResponse struct {
	ContatoID       string     `json:"contato_id"`
	ContatoNome     string     `json:"contato_nome"`
	Telefones       []string   `json:"telefones"`
	Status          string     `json:"status"`
	StatusUpdatedAt time.Time  `json:"status_updated_at"`
	ScheduledFor    *time.Time `json:"scheduled_for,omitempty"`
	ScheduleLabel   string     `json:"schedule_label,omitempty"`
	Notes           string     `json:"notes"`
	Contacted       bool       `json:"contacted"`
	CasoID          string     `json:"caso_id"`
	CasoNome        string     `json:"caso_nome"`
	Cidade          string     `json:"cidade,omitempty"`
	DataObito       *time.Time `json:"data_obito,omitempty"`
	TipoParentesco  string     `json:"tipo_parentesco,omitempty"`
}

// KanbanBoardResponse groups cards into the six pipeline columns
type KanbanBoardResponse struct {
	Columns map[string][]KanbanCardResponse `json:"columns"`
	Counts  map[string]int64                `json:"counts"`
	Total   int64                           `json:"total"`
}

// GetSummary builds the dashboard counter block
func (s *DashboardService) GetSummary() (*DashboardSummaryResponse, error) {
	totalCasos, err := s.casoRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count casos: %w", err)
	}
	totalContatos, err := s.contatoRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count contatos: %w", err)
	}
	contacted, err := s.contatoRepo.CountContacted()
	if err != nil {
		return nil, fmt.Errorf("failed to count contacted contatos: %w", err)
	}
	statusCounts, err := s.contatoRepo.CountByStatus()
	if err != nil {
		return nil, fmt.Errorf("failed to count statuses: %w", err)
	}
	recent, err := s.casoRepo.GetRecent(5)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent casos: %w", err)
	}

	// Every stage is present in the response even when empty
	stages := make(map[string]int64, len(models.AllPipelineStatuses))
	for _, st := range models.AllPipelineStatuses {
		stages[string(st)] = 0
	}
	for _, sc := range statusCounts {
		stages[string(sc.Status)] = sc.Count
	}

	recentResponses := make([]CasoResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, toCasoResponse(&recent[i]))
	}

	return &DashboardSummaryResponse{
		TotalCasos:     totalCasos,
		TotalContatos:  totalContatos,
		ContactedCount: contacted,
		StageCounts:    stages,
		RecentCasos:    recentResponses,
	}, nil
}

// GetBoard builds the kanban board, optionally filtered by caso city
func (s *DashboardService) GetBoard(city string, limit, offset int) (*KanbanBoardResponse, error) {
	if limit <= 0 || limit > 500 || offset < 0 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	cards, total, err := s.contatoRepo.GetPipelineCards(city, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline cards: %w", err)
	}

	now := time.Now()
	board := &KanbanBoardResponse{
		Columns: make(map[string][]KanbanCardResponse, len(models.AllPipelineStatuses)),
		Counts:  make(map[string]int64, len(models.AllPipelineStatuses)),
		Total:   total,
	}
	for _, st := range models.AllPipelineStatuses {
		board.Columns[string(st)] = []KanbanCardResponse{}
		board.Counts[string(st)] = 0
	}

	for i := range cards {
		card := toKanbanCard(&cards[i], now)
		board.Columns[card.Status] = append(board.Columns[card.Status], card)
		board.Counts[card.Status]++
	}

	return board, nil
}

func toKanbanCard(c *repository.PipelineCard, now time.Time) KanbanCardResponse {
	telefones := make([]string, 0, 4)
	for _, t := range []string{c.Telefone1, c.Telefone2, c.Telefone3, c.Telefone4} {
		if t != "" {
			telefones = append(telefones, t)
		}
	}

	card := KanbanCardResponse{
		ContatoID:       c.ContatoID.String(),
		ContatoNome:     c.ContatoNome,
		Telefones:       telefones,
		Status:          string(c.Status),
		StatusUpdatedAt: c.StatusUpdatedAt,
		ScheduledFor:    c.ScheduledFor,
		Notes:           c.Notes,
		Contacted:       c.Contacted,
		CasoID:          c.CasoID.String(),
		CasoNome:        c.CasoNome,
		Cidade:          c.Cidade,
		DataObito:       c.DataObito,
		TipoParentesco:  c.TipoParentesco,
	}
	if c.Status == models.StatusScheduled && c.ScheduledFor != nil {
		card.ScheduleLabel = ScheduleLabel(*c.ScheduledFor, now)
	}
	return card
}
