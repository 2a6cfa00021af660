package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/onboardhq/onboardpath/internal/models"
)

// SubmissionFor returns the submission for a (task, employee) pair with
// attachments in upload order, or nil when none exists.
func (s *Store) SubmissionFor(taskID, employeeID uint) (*models.Submission, error) {
	var sub models.Submission
	err := s.db.
		Preload("Attachments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("task_id = ? AND employee_id = ?", taskID, employeeID).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// CreateSubmission stores a new submission together with its attachments.
func (s *Store) CreateSubmission(sub *models.Submission) error {
	return s.db.Create(sub).Error
}

// UpdateSubmission persists a review decision. Only the decision columns
// move; evidence is immutable once submitted.
func (s *Store) UpdateSubmission(sub *models.Submission) error {
	return s.db.Model(&models.Submission{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"status":           sub.Status,
			"decided_at":       sub.DecidedAt,
			"manager_feedback": sub.ManagerFeedback,
		}).Error
}

// PendingSubmissions lists all submissions awaiting review, oldest first.
func (s *Store) PendingSubmissions() ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.
		Preload("Attachments", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		Where("status = ?", models.SubmissionPending).
		Order("submitted_at ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
