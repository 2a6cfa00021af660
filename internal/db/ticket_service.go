package db

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/onboardhq/onboardpath/internal/models"
	"github.com/onboardhq/onboardpath/internal/parser"
	"github.com/onboardhq/onboardpath/internal/progress"
)

// CreateTicketRequest holds the data for a new incident ticket.
type CreateTicketRequest struct {
	AssociateID     string
	IncidentID      string
	Customer        string
	AssignedGroup   string
	Priority        string
	ApplicationName string
	Status          string // Resolved or Canceled
	SLAMet          *bool
	ReasonForDelay  string
}

// CreateTicket logs an incident ticket for an associate. Tickets open up
// once onboarding is complete: every catalog task must be done.
func (s *Store) CreateTicket(req CreateTicketRequest) (*models.Ticket, error) {
	emp, err := s.EmployeeByAssociateID(req.AssociateID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.Catalog()
	if err != nil {
		return nil, err
	}
	if emp.CompletedCount() < len(catalog) {
		return nil, &progress.ValidationError{Reason: "ticket submission opens after all onboarding tasks are completed"}
	}

	incidentID, err := parser.NormalizeIncidentID(req.IncidentID)
	if err != nil {
		return nil, &progress.ValidationError{Reason: err.Error()}
	}
	if incidentID == "" {
		return nil, &progress.ValidationError{Reason: "incident ID is required"}
	}
	if strings.TrimSpace(req.Customer) == "" {
		return nil, &progress.ValidationError{Reason: "customer is required"}
	}
	if req.Status != models.TicketResolved && req.Status != models.TicketCanceled {
		return nil, &progress.ValidationError{Reason: "ticket status must be Resolved or Canceled"}
	}
	if req.SLAMet != nil && !*req.SLAMet && strings.TrimSpace(req.ReasonForDelay) == "" {
		return nil, &progress.ValidationError{Reason: "reason for delay is required when the SLA was missed"}
	}

	ticket := models.Ticket{
		Key:             uuid.NewString(),
		EmployeeID:      emp.ID,
		IncidentID:      incidentID,
		Customer:        strings.TrimSpace(req.Customer),
		AssignedGroup:   strings.TrimSpace(req.AssignedGroup),
		Priority:        strings.TrimSpace(req.Priority),
		ApplicationName: strings.TrimSpace(req.ApplicationName),
		Status:          req.Status,
		SLAMet:          req.SLAMet,
		ReasonForDelay:  strings.TrimSpace(req.ReasonForDelay),
		SubmittedAt:     time.Now(),
	}
	if err := s.db.Create(&ticket).Error; err != nil {
		return nil, err
	}
	return &ticket, nil
}

// Tickets returns all tickets, newest first.
func (s *Store) Tickets() ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := s.db.
		Preload("Employee").
		Order("submitted_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}

// TicketsForAssociate returns one associate's tickets, newest first.
func (s *Store) TicketsForAssociate(associateID string) ([]models.Ticket, error) {
	emp, err := s.EmployeeByAssociateID(associateID)
	if err != nil {
		return nil, err
	}
	var tickets []models.Ticket
	err = s.db.
		Preload("Employee").
		Where("employee_id = ?", emp.ID).
		Order("submitted_at DESC").
		Find(&tickets).Error
	if err != nil {
		return nil, err
	}
	return tickets, nil
}
