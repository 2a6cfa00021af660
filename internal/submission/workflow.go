package submission

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/onboardhq/onboardpath/internal/models"
	"github.com/onboardhq/onboardpath/internal/progress"
)

// EvidenceFile is one screenshot handed to Submit, in upload order.
type EvidenceFile struct {
	Name string
	Data []byte
}

// Store is the persistence port for the submission workflow.
type Store interface {
	Catalog() ([]models.TaskDefinition, error)
	EmployeeByAssociateID(associateID string) (*models.Employee, error)
	SaveProgress(emp *models.Employee) error

	// SubmissionFor returns the submission for a (task, employee) pair,
	// or nil when none exists.
	SubmissionFor(taskID, employeeID uint) (*models.Submission, error)
	CreateSubmission(sub *models.Submission) error
	UpdateSubmission(sub *models.Submission) error
}

// Workflow drives the none -> pending -> approved/rejected lifecycle for
// upload-required tasks. Mutations run under a mutex, same contract as
// the progress engine.
type Workflow struct {
	store Store

	mu  sync.Mutex
	now func() time.Time
}

// NewWorkflow creates a submission workflow over a store.
func NewWorkflow(store Store) *Workflow {
	return &Workflow{
		store: store,
		now:   time.Now,
	}
}

// Submit creates a pending submission for an upload-required task.
// Evidence must be non-empty and image-only, and no submission may already
// exist for the pair in any status.
func (w *Workflow) Submit(associateID string, taskID uint, files []EvidenceFile) (*models.Submission, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	catalog, err := w.store.Catalog()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	task, ok := taskByID(catalog, taskID)
	if !ok {
		return nil, &progress.NotFoundError{Resource: fmt.Sprintf("task #%d", taskID)}
	}
	if !task.RequiresUpload {
		return nil, &progress.ValidationError{Reason: fmt.Sprintf("task #%d does not take uploads, mark it complete directly", taskID)}
	}

	emp, err := w.store.EmployeeByAssociateID(associateID)
	if err != nil {
		return nil, err
	}

	existing, err := w.store.SubmissionFor(taskID, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("look up submission: %w", err)
	}
	if existing != nil {
		return nil, &progress.StateError{Reason: fmt.Sprintf("a submission for task #%d already exists (%s)", taskID, existing.Status)}
	}

	if len(files) == 0 {
		return nil, &progress.ValidationError{Reason: "at least one screenshot is required"}
	}

	sub := &models.Submission{
		Key:         uuid.NewString(),
		TaskID:      taskID,
		EmployeeID:  emp.ID,
		Status:      models.SubmissionPending,
		SubmittedAt: w.now(),
	}
	for i, f := range files {
		contentType := http.DetectContentType(f.Data)
		if !strings.HasPrefix(contentType, "image/") {
			return nil, &progress.ValidationError{Reason: fmt.Sprintf("only image files (screenshots) are allowed, %q is %s", f.Name, contentType)}
		}
		sub.Attachments = append(sub.Attachments, models.Attachment{
			Position:    i,
			FileName:    f.Name,
			ContentType: contentType,
			Data:        f.Data,
		})
	}

	if err := w.store.CreateSubmission(sub); err != nil {
		return nil, fmt.Errorf("create submission: %w", err)
	}
	return sub, nil
}

// Decide moves a pending submission to approved or rejected, recording
// optional manager feedback. Approval idempotently marks the task completed
// for the owner; it never awards points — point balances move only on the
// explicit toggle path.
func (w *Workflow) Decide(associateID string, taskID uint, verdict, feedback string) (*models.Submission, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if verdict != models.SubmissionApproved && verdict != models.SubmissionRejected {
		return nil, &progress.ValidationError{Reason: fmt.Sprintf("verdict must be %q or %q", models.SubmissionApproved, models.SubmissionRejected)}
	}

	emp, err := w.store.EmployeeByAssociateID(associateID)
	if err != nil {
		return nil, err
	}

	sub, err := w.store.SubmissionFor(taskID, emp.ID)
	if err != nil {
		return nil, fmt.Errorf("look up submission: %w", err)
	}
	if sub == nil {
		return nil, &progress.NotFoundError{Resource: fmt.Sprintf("submission for task #%d", taskID)}
	}
	if sub.IsTerminal() {
		return nil, &progress.StateError{Reason: fmt.Sprintf("submission for task #%d is already %s", taskID, sub.Status)}
	}

	now := w.now()
	sub.Status = verdict
	sub.DecidedAt = &now
	if feedback != "" {
		sub.ManagerFeedback = feedback
	}

	if err := w.store.UpdateSubmission(sub); err != nil {
		return nil, fmt.Errorf("update submission: %w", err)
	}

	if verdict == models.SubmissionApproved && !emp.HasCompleted(taskID) {
		emp.Completions = append(emp.Completions, models.TaskCompletion{
			EmployeeID:  emp.ID,
			TaskID:      taskID,
			CompletedAt: now,
		})
		if err := w.store.SaveProgress(emp); err != nil {
			return nil, fmt.Errorf("save progress: %w", err)
		}
	}

	return sub, nil
}

func taskByID(catalog []models.TaskDefinition, taskID uint) (models.TaskDefinition, bool) {
	for _, t := range catalog {
		if t.ID == taskID {
			return t, true
		}
	}
	return models.TaskDefinition{}, false
}
