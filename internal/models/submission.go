package models

import (
	"time"

	"gorm.io/gorm"
)

// Submission review states
const (
	SubmissionPending  = "pending"
	SubmissionApproved = "approved"
	SubmissionRejected = "rejected"
)

// Submission is an evidence package for an upload-required task, awaiting
// manager review. At most one exists per (task, employee) pair.
type Submission struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Key        string `gorm:"uniqueIndex;not null" json:"key"` // uuid, stable external reference
	TaskID     uint   `gorm:"not null;uniqueIndex:idx_task_employee" json:"task_id"`
	EmployeeID uint   `gorm:"not null;uniqueIndex:idx_task_employee" json:"employee_id"`

	Status          string     `gorm:"default:pending" json:"status"` // pending, approved, rejected
	SubmittedAt     time.Time  `gorm:"not null" json:"submitted_at"`
	DecidedAt       *time.Time `json:"decided_at"`
	ManagerFeedback string     `json:"manager_feedback"`

	// Relationships
	Attachments []Attachment `gorm:"foreignKey:SubmissionID" json:"attachments"`
}

// IsTerminal reports whether the submission has been decided.
func (s *Submission) IsTerminal() bool {
	return s.Status == SubmissionApproved || s.Status == SubmissionRejected
}

// Attachment is one screenshot in a submission, kept in upload order.
type Attachment struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	SubmissionID uint   `gorm:"not null;index" json:"submission_id"`
	Position     int    `gorm:"not null" json:"position"`
	FileName     string `json:"file_name"`
	ContentType  string `gorm:"not null" json:"content_type"`
	Data         []byte `gorm:"not null" json:"-"`
}
