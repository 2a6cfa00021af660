package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/onboardhq/onboardpath/internal/models"
	"github.com/onboardhq/onboardpath/internal/progress"
)

// CreateEmployeeRequest holds the data needed to register an associate.
type CreateEmployeeRequest struct {
	AssociateID    string
	Name           string
	Department     string
	OnboardingDate *time.Time

	// TrackPoints starts the employee with a zero point balance. Leave it
	// false in sequential deployments; the leaderboard then skips them.
	TrackPoints bool
}

// CreateEmployee registers a new associate with an empty progress record.
func (s *Store) CreateEmployee(req CreateEmployeeRequest) (*models.Employee, error) {
	associateID := strings.TrimSpace(req.AssociateID)
	name := strings.TrimSpace(req.Name)
	if associateID == "" || name == "" {
		return nil, &progress.ValidationError{Reason: "associate ID and name are required"}
	}

	var existing models.Employee
	err := s.db.Where("associate_id = ?", associateID).First(&existing).Error
	if err == nil {
		return nil, &progress.ValidationError{Reason: fmt.Sprintf("associate %s is already registered", associateID)}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	emp := models.Employee{
		AssociateID:    associateID,
		Name:           name,
		Department:     strings.TrimSpace(req.Department),
		OnboardingDate: req.OnboardingDate,
	}
	if req.TrackPoints {
		zero := 0
		emp.Points = &zero
	}

	if err := s.db.Create(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

// EmployeeByAssociateID loads an employee with completions and submissions.
func (s *Store) EmployeeByAssociateID(associateID string) (*models.Employee, error) {
	var emp models.Employee
	err := s.db.
		Preload("Completions", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("completed_at ASC")
		}).
		Preload("Submissions").
		Where("associate_id = ?", associateID).
		First(&emp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &progress.NotFoundError{Resource: fmt.Sprintf("associate %s", associateID)}
	}
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// ListEmployees returns the full roster in registration order.
func (s *Store) ListEmployees() ([]models.Employee, error) {
	var employees []models.Employee
	err := s.db.
		Preload("Completions").
		Order("id ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

// SaveProgress persists the employee's completion set, point balance and
// mandatory flag in one transaction. Completions are replaced wholesale so
// the unique (employee, task) index keeps set semantics.
func (s *Store) SaveProgress(emp *models.Employee) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", emp.ID).Delete(&models.TaskCompletion{}).Error; err != nil {
			return err
		}
		for i := range emp.Completions {
			emp.Completions[i].ID = 0
			emp.Completions[i].EmployeeID = emp.ID
			if err := tx.Create(&emp.Completions[i]).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Employee{}).
			Where("id = ?", emp.ID).
			Updates(map[string]interface{}{
				"points":         emp.Points,
				"mandatory_done": emp.MandatoryDone,
			}).Error
	})
}

// SetMandatoryDone flips the onboarding-assistant gate for an associate.
func (s *Store) SetMandatoryDone(associateID string, done bool) error {
	emp, err := s.EmployeeByAssociateID(associateID)
	if err != nil {
		return err
	}
	return s.db.Model(&models.Employee{}).
		Where("id = ?", emp.ID).
		Update("mandatory_done", done).Error
}
