package models

// PipelineStatus defines the stage a contact occupies in the outreach pipeline.
// The string values are stored as-is in the contatos.status column.
type PipelineStatus string

const (
	StatusNew        PipelineStatus = "New"
	StatusAttempted  PipelineStatus = "Attempted"
	StatusInProgress PipelineStatus = "In Progress"
	StatusScheduled  PipelineStatus = "Scheduled"
	StatusWon        PipelineStatus = "Won"
	StatusLost       PipelineStatus = "Lost"
)

// AllPipelineStatuses lists the stages in board order.
var AllPipelineStatuses = []PipelineStatus{
	StatusNew,
	StatusAttempted,
	StatusInProgress,
	StatusScheduled,
	StatusWon,
	StatusLost,
}

// IsValid checks if the PipelineStatus is one of the six known stages
func (s PipelineStatus) IsValid() bool {
	switch s {
	case StatusNew, StatusAttempted, StatusInProgress, StatusScheduled, StatusWon, StatusLost:
		return true
	}
	return false
}

// IsTerminal reports whether the stage is closed for cascade purposes.
// A Won or Lost contact is never overwritten by the close-all cascade.
func (s PipelineStatus) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

// CampaignStatus defines the lifecycle state of an outreach campaign
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// IsValid checks if the CampaignStatus is valid
func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

// ProfileRole defines the access level of a user profile
type ProfileRole string

const (
	RoleAdmin      ProfileRole = "admin"
	RoleEmpresa    ProfileRole = "empresa"
	RoleSupervisor ProfileRole = "supervisor"
	RoleOperador   ProfileRole = "operador"
)

// IsValid checks if the ProfileRole is valid
func (r ProfileRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmpresa, RoleSupervisor, RoleOperador:
		return true
	}
	return false
}

// CanManageCampaigns reports whether the role may create, edit or delete campaigns
func (r ProfileRole) CanManageCampaigns() bool {
	return r == RoleAdmin || r == RoleEmpresa
}
