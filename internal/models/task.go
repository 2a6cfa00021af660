package models

import (
	"time"

	"gorm.io/gorm"
)

// TaskDefinition is a single onboarding task in the shared catalog.
// Definitions are immutable once created; managers can only append.
type TaskDefinition struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title          string `gorm:"not null" json:"title"`
	Description    string `json:"description"`
	Priority       int    `gorm:"default:0" json:"priority"` // 0=none, 1=low, 2=medium, 3=high
	RequiresUpload bool   `gorm:"default:false" json:"requires_upload"`
	Points         int    `gorm:"default:10" json:"points"`
	SequenceIndex  int    `gorm:"not null;uniqueIndex" json:"sequence_index"`
	IsCustom       bool   `gorm:"default:false" json:"is_custom"` // manager-assigned, not part of the seed catalog

	// Display-only metadata, opaque to the progress engine
	EstimatedTime string     `json:"estimated_time"`
	Deadline      *time.Time `json:"deadline"`
}

// PriorityLabel returns the display name for the task priority.
func (t TaskDefinition) PriorityLabel() string {
	switch t.Priority {
	case 1:
		return "low"
	case 2:
		return "medium"
	case 3:
		return "high"
	default:
		return ""
	}
}
