package models

import (
	"time"

	"gorm.io/gorm"
)

// Ticket statuses
const (
	TicketResolved = "Resolved"
	TicketCanceled = "Canceled"
)

// Ticket is an incident ticket logged by an associate after onboarding.
type Ticket struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Key        string `gorm:"uniqueIndex;not null" json:"key"` // uuid
	EmployeeID uint   `gorm:"not null;index" json:"employee_id"`

	IncidentID      string `gorm:"not null" json:"incident_id"`
	Customer        string `gorm:"not null" json:"customer"`
	AssignedGroup   string `json:"assigned_group"`
	Priority        string `json:"priority"`
	ApplicationName string `json:"application_name"`
	Status          string `gorm:"not null" json:"status"` // Resolved, Canceled
	SLAMet          *bool  `json:"sla_met"`
	ReasonForDelay  string `json:"reason_for_delay"`

	SubmittedAt time.Time `gorm:"not null" json:"submitted_at"`

	// Relationships
	Employee Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"employee"`
}
