package progress

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/onboardhq/onboardpath/internal/models"
)

// Store is the persistence port the engine mutates through. The sqlite
// implementation lives in internal/db; tests use in-memory fakes.
type Store interface {
	Catalog() ([]models.TaskDefinition, error)
	EmployeeByAssociateID(associateID string) (*models.Employee, error)
	SaveProgress(emp *models.Employee) error
}

// TaskView is the derived, read-only state of one catalog task for one
// employee, ready for a presentation layer to render.
type TaskView struct {
	Task           models.TaskDefinition
	Completed      bool
	Locked         bool
	RequiredPoints int
	Submission     *models.Submission
}

// Engine computes derived task state and applies completion toggles.
// Mutations hold a mutex so each read-modify-write of a progress record
// runs exclusively (single active actor per record).
type Engine struct {
	store  Store
	gating GatingPolicy

	mu  sync.Mutex
	now func() time.Time
}

// NewEngine creates a progress engine over a store with the given policy.
func NewEngine(store Store, gating GatingPolicy) *Engine {
	return &Engine{
		store:  store,
		gating: gating,
		now:    time.Now,
	}
}

// Gating returns the active gating policy.
func (en *Engine) Gating() GatingPolicy {
	return en.gating
}

// LockStatus maps every catalog task id to its locked state for the employee.
func (en *Engine) LockStatus(associateID string) (map[uint]bool, error) {
	catalog, emp, err := en.load(associateID)
	if err != nil {
		return nil, err
	}
	return en.gating.LockStatus(catalog, emp), nil
}

// Checklist returns the employee's full derived task list in catalog order.
func (en *Engine) Checklist(associateID string) ([]TaskView, error) {
	catalog, emp, err := en.load(associateID)
	if err != nil {
		return nil, err
	}

	locked := en.gating.LockStatus(catalog, emp)
	ordered := bySequence(catalog)

	views := make([]TaskView, 0, len(ordered))
	for i, task := range ordered {
		view := TaskView{
			Task:           task,
			Completed:      emp.HasCompleted(task.ID),
			Locked:         locked[task.ID],
			RequiredPoints: RequiredPoints(i),
		}
		for s := range emp.Submissions {
			if emp.Submissions[s].TaskID == task.ID {
				view.Submission = &emp.Submissions[s]
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Toggle flips the completion state of a task for an employee and persists
// the result. Upload-required tasks are rejected (they complete only through
// the submission workflow), as are tasks locked by the active policy.
// In point-gated mode completing adds the task's points and un-completing
// subtracts them, floored at zero.
func (en *Engine) Toggle(associateID string, taskID uint) (*models.Employee, error) {
	en.mu.Lock()
	defer en.mu.Unlock()

	catalog, emp, err := en.load(associateID)
	if err != nil {
		return nil, err
	}

	task, ok := findTask(catalog, taskID)
	if !ok {
		return nil, &NotFoundError{Resource: fmt.Sprintf("task #%d", taskID)}
	}
	if task.RequiresUpload {
		return nil, &ValidationError{Reason: fmt.Sprintf("task #%d requires a reviewed submission and cannot be toggled", taskID)}
	}

	if emp.HasCompleted(taskID) {
		uncomplete(emp, taskID)
		if en.gating.AwardsPoints() {
			subtractPoints(emp, task.Points)
		}
	} else {
		if en.gating.LockStatus(catalog, emp)[taskID] {
			return nil, &ValidationError{Reason: fmt.Sprintf("task #%d is locked", taskID)}
		}
		emp.Completions = append(emp.Completions, models.TaskCompletion{
			EmployeeID:  emp.ID,
			TaskID:      taskID,
			CompletedAt: en.now(),
		})
		if en.gating.AwardsPoints() {
			addPoints(emp, task.Points)
		}
	}

	if err := en.store.SaveProgress(emp); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}
	return emp, nil
}

// MandatoryGate reports whether the employee has finished the onboarding
// assistant sequence. The caller decides how to restrict the view; the
// engine only reports the capability.
func (en *Engine) MandatoryGate(associateID string) (bool, error) {
	emp, err := en.store.EmployeeByAssociateID(associateID)
	if err != nil {
		return false, err
	}
	return emp.MandatoryDone, nil
}

// Percent returns the employee's completion percentage over the catalog.
func (en *Engine) Percent(associateID string) (int, error) {
	catalog, emp, err := en.load(associateID)
	if err != nil {
		return 0, err
	}
	return Percent(catalog, emp), nil
}

// Percent computes round-half-up completion over a catalog. An empty
// catalog is 0%, never a division by zero.
func Percent(catalog []models.TaskDefinition, emp *models.Employee) int {
	if len(catalog) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(emp.CompletedCount()) / float64(len(catalog))))
}

func (en *Engine) load(associateID string) ([]models.TaskDefinition, *models.Employee, error) {
	catalog, err := en.store.Catalog()
	if err != nil {
		return nil, nil, fmt.Errorf("load catalog: %w", err)
	}
	emp, err := en.store.EmployeeByAssociateID(associateID)
	if err != nil {
		return nil, nil, err
	}
	return catalog, emp, nil
}

func findTask(catalog []models.TaskDefinition, taskID uint) (models.TaskDefinition, bool) {
	for _, t := range catalog {
		if t.ID == taskID {
			return t, true
		}
	}
	return models.TaskDefinition{}, false
}

func uncomplete(emp *models.Employee, taskID uint) {
	kept := emp.Completions[:0]
	for _, c := range emp.Completions {
		if c.TaskID != taskID {
			kept = append(kept, c)
		}
	}
	emp.Completions = kept
}

func addPoints(emp *models.Employee, points int) {
	balance := emp.PointBalance() + points
	emp.Points = &balance
}

func subtractPoints(emp *models.Employee, points int) {
	balance := emp.PointBalance() - points
	if balance < 0 {
		balance = 0
	}
	emp.Points = &balance
}
