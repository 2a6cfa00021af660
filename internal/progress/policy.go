package progress

import (
	"sort"

	"github.com/onboardhq/onboardpath/internal/models"
)

// PointsPerStep is the point threshold added per catalog position in
// point-gated deployments: the task at sequence index i needs i*10 points.
const PointsPerStep = 10

// GatingPolicy decides which catalog tasks are locked for an employee.
// Exactly one policy is active per deployment.
type GatingPolicy interface {
	Name() string

	// LockStatus maps every catalog task id to its locked state.
	// Completed tasks are never locked, whatever the policy says.
	LockStatus(catalog []models.TaskDefinition, emp *models.Employee) map[uint]bool

	// AwardsPoints reports whether completion toggles move a point balance.
	AwardsPoints() bool
}

// PolicyForMode returns the gating policy for a configured mode string.
// Unknown modes fall back to sequential gating.
func PolicyForMode(mode string) GatingPolicy {
	if mode == "points" {
		return PointGating{}
	}
	return SequentialGating{}
}

// SequentialGating locks every task until its predecessor in catalog order
// is completed. The first task is always unlocked.
type SequentialGating struct{}

func (SequentialGating) Name() string       { return "sequential" }
func (SequentialGating) AwardsPoints() bool { return false }

func (SequentialGating) LockStatus(catalog []models.TaskDefinition, emp *models.Employee) map[uint]bool {
	ordered := bySequence(catalog)
	locked := make(map[uint]bool, len(ordered))
	for i, task := range ordered {
		if emp.HasCompleted(task.ID) {
			locked[task.ID] = false
			continue
		}
		locked[task.ID] = i > 0 && !emp.HasCompleted(ordered[i-1].ID)
	}
	return locked
}

// PointGating locks the task at sequence index i until the employee has
// accumulated i*10 points. Completion is sticky: a completed task stays
// unlocked even if the balance later drops below its threshold.
type PointGating struct{}

func (PointGating) Name() string       { return "points" }
func (PointGating) AwardsPoints() bool { return true }

func (PointGating) LockStatus(catalog []models.TaskDefinition, emp *models.Employee) map[uint]bool {
	ordered := bySequence(catalog)
	locked := make(map[uint]bool, len(ordered))
	for i, task := range ordered {
		if emp.HasCompleted(task.ID) {
			locked[task.ID] = false
			continue
		}
		locked[task.ID] = emp.PointBalance() < RequiredPoints(i)
	}
	return locked
}

// RequiredPoints returns the unlock threshold for a catalog position.
func RequiredPoints(sequenceIndex int) int {
	return sequenceIndex * PointsPerStep
}

// bySequence returns the catalog sorted by sequence index without
// mutating the caller's slice.
func bySequence(catalog []models.TaskDefinition) []models.TaskDefinition {
	ordered := make([]models.TaskDefinition, len(catalog))
	copy(ordered, catalog)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].SequenceIndex < ordered[j].SequenceIndex
	})
	return ordered
}
