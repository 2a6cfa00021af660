package db

import (
	"strings"
	"time"

	"github.com/onboardhq/onboardpath/internal/models"
	"github.com/onboardhq/onboardpath/internal/progress"
)

// defaultCatalog is the first-week onboarding checklist every new
// deployment starts with. Tasks 1 and 7 require screenshot evidence.
var defaultCatalog = []models.TaskDefinition{
	{Title: "Complete Mandatory Safety Course", Description: "Complete the workplace safety and emergency procedures course", Priority: 3, EstimatedTime: "45 min", RequiresUpload: true},
	{Title: "Get IT Access & Equipment Setup", Description: "Collect laptop, phone, and get access to company systems", Priority: 3, EstimatedTime: "30 min"},
	{Title: "Connect with Direct Manager", Description: "Schedule and attend your first one-on-one meeting", Priority: 3, EstimatedTime: "60 min"},
	{Title: "Complete HR Documentation", Description: "Fill out tax forms, benefits enrollment, and emergency contacts", Priority: 3, EstimatedTime: "20 min"},
	{Title: "Team Introduction Meeting", Description: "Meet your team members and learn about ongoing projects", Priority: 2, EstimatedTime: "45 min"},
	{Title: "Company Culture Overview", Description: "Learn about company values, mission, and culture", Priority: 2, EstimatedTime: "30 min"},
	{Title: "Security & Compliance Training", Description: "Complete cybersecurity awareness and compliance training", Priority: 3, EstimatedTime: "35 min", RequiresUpload: true},
	{Title: "Office Tour & Facilities", Description: "Get familiar with office layout, amenities, and facilities", Priority: 1, EstimatedTime: "15 min"},
	{Title: "Benefits Information Session", Description: "Learn about health insurance, retirement plans, and perks", Priority: 2, EstimatedTime: "40 min"},
	{Title: "Set Up Development Environment", Description: "Install and configure necessary software and development tools", Priority: 3, EstimatedTime: "90 min"},
}

// SeedCatalog inserts the default catalog into an empty database.
// Calling it again is a no-op.
func (s *Store) SeedCatalog() error {
	var count int64
	if err := s.db.Model(&models.TaskDefinition{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, task := range defaultCatalog {
		task.SequenceIndex = i
		task.Points = 10
		if err := s.db.Create(&task).Error; err != nil {
			return err
		}
	}
	return nil
}

// Catalog returns all task definitions in sequence order.
func (s *Store) Catalog() ([]models.TaskDefinition, error) {
	var tasks []models.TaskDefinition
	if err := s.db.Order("sequence_index ASC").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTaskRequest holds the data for a manager-assigned catalog task.
type CreateTaskRequest struct {
	Title          string
	Description    string
	Priority       int // 0=none, 1=low, 2=medium, 3=high
	Points         int
	RequiresUpload bool
	EstimatedTime  string
	Deadline       *time.Time
}

// AppendTask adds a manager-defined task at the end of the catalog.
// Definitions are append-only; there is no edit or delete.
func (s *Store) AppendTask(req CreateTaskRequest) (*models.TaskDefinition, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &progress.ValidationError{Reason: "task title is required"}
	}
	points := req.Points
	if points == 0 {
		points = 10
	}
	if points < 0 {
		return nil, &progress.ValidationError{Reason: "task points must be positive"}
	}

	var nextIndex int
	row := s.db.Model(&models.TaskDefinition{}).Select("COALESCE(MAX(sequence_index), -1) + 1").Row()
	if err := row.Scan(&nextIndex); err != nil {
		return nil, err
	}

	task := models.TaskDefinition{
		Title:          title,
		Description:    strings.TrimSpace(req.Description),
		Priority:       req.Priority,
		Points:         points,
		RequiresUpload: req.RequiresUpload,
		EstimatedTime:  req.EstimatedTime,
		Deadline:       req.Deadline,
		SequenceIndex:  nextIndex,
		IsCustom:       true,
	}
	if err := s.db.Create(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}
