package models

import (
	"time"

	"gorm.io/gorm"
)

// Employee is one onboarding associate together with their progress record.
type Employee struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	AssociateID    string     `gorm:"uniqueIndex;not null" json:"associate_id"`
	Name           string     `gorm:"not null" json:"name"`
	Department     string     `json:"department"`
	OnboardingDate *time.Time `json:"onboarding_date"`

	// MandatoryDone gates access to the full catalog until the
	// onboarding-assistant sequence has been confirmed.
	MandatoryDone bool `gorm:"default:false" json:"mandatory_done"`

	// Points is nil for employees tracked without a point balance
	// (sequential deployments). The leaderboard skips them entirely.
	Points *int `json:"points"`

	// Relationships
	Completions []TaskCompletion `gorm:"foreignKey:EmployeeID" json:"completions"`
	Submissions []Submission     `gorm:"foreignKey:EmployeeID" json:"submissions"`
}

// TaskCompletion records one completed catalog task for an employee.
// The unique index gives completedTaskIds its set semantics.
type TaskCompletion struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	EmployeeID  uint      `gorm:"not null;uniqueIndex:idx_employee_task" json:"employee_id"`
	TaskID      uint      `gorm:"not null;uniqueIndex:idx_employee_task" json:"task_id"`
	CompletedAt time.Time `json:"completed_at"`
}

// HasCompleted reports whether the employee completed the given task.
func (e *Employee) HasCompleted(taskID uint) bool {
	for _, c := range e.Completions {
		if c.TaskID == taskID {
			return true
		}
	}
	return false
}

// CompletedCount returns the number of completed tasks.
func (e *Employee) CompletedCount() int {
	return len(e.Completions)
}

// PointBalance returns the accumulated points, or 0 when no balance is kept.
func (e *Employee) PointBalance() int {
	if e.Points == nil {
		return 0
	}
	return *e.Points
}
