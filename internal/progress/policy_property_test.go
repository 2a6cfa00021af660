package progress

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/onboardhq/onboardpath/internal/models"
)

func genEmployee(rt *rapid.T, catalogSize int) *models.Employee {
	emp := &models.Employee{ID: 1, AssociateID: "A100"}

	done := rapid.SliceOfNDistinct(
		rapid.IntRange(1, catalogSize),
		0, catalogSize,
		func(v int) int { return v },
	).Draw(rt, "done")
	for _, id := range done {
		emp.Completions = append(emp.Completions, models.TaskCompletion{TaskID: uint(id)})
	}

	if rapid.Bool().Draw(rt, "hasBalance") {
		balance := rapid.IntRange(0, 200).Draw(rt, "balance")
		emp.Points = &balance
	}
	return emp
}

func TestPercentBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 30).Draw(rt, "catalogSize")
		catalog := testCatalog(size)
		emp := genEmployee(rt, size)

		got := Percent(catalog, emp)
		if got < 0 || got > 100 {
			rt.Fatalf("percent %d out of [0,100]", got)
		}
		if emp.CompletedCount() == size && got != 100 {
			rt.Fatalf("all tasks done but percent = %d", got)
		}
		if emp.CompletedCount() == 0 && got != 0 {
			rt.Fatalf("nothing done but percent = %d", got)
		}
	})
}

func TestPercentMonotone(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(2, 30).Draw(rt, "catalogSize")
		catalog := testCatalog(size)
		emp := genEmployee(rt, size)

		before := Percent(catalog, emp)

		// Complete one more task, if any remain.
		for id := uint(1); id <= uint(size); id++ {
			if !emp.HasCompleted(id) {
				emp.Completions = append(emp.Completions, models.TaskCompletion{TaskID: id})
				break
			}
		}
		after := Percent(catalog, emp)
		if after < before {
			rt.Fatalf("percent dropped from %d to %d after completing a task", before, after)
		}
	})
}

func TestSequentialLockInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 20).Draw(rt, "catalogSize")
		catalog := testCatalog(size)
		emp := genEmployee(rt, size)

		locked := SequentialGating{}.LockStatus(catalog, emp)
		for i, task := range catalog {
			want := false
			if !emp.HasCompleted(task.ID) {
				want = i > 0 && !emp.HasCompleted(catalog[i-1].ID)
			}
			if locked[task.ID] != want {
				rt.Fatalf("task %d: locked=%v, want %v", task.ID, locked[task.ID], want)
			}
		}
	})
}

func TestPointLockInvariant(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 20).Draw(rt, "catalogSize")
		catalog := testCatalog(size)
		emp := genEmployee(rt, size)

		locked := PointGating{}.LockStatus(catalog, emp)
		for i, task := range catalog {
			want := !emp.HasCompleted(task.ID) && emp.PointBalance() < RequiredPoints(i)
			if locked[task.ID] != want {
				rt.Fatalf("task %d (threshold %d, balance %d): locked=%v, want %v",
					task.ID, RequiredPoints(i), emp.PointBalance(), locked[task.ID], want)
			}
		}
	})
}

func TestToggleRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		size := rapid.IntRange(1, 10).Draw(rt, "catalogSize")
		catalog := testCatalog(size)
		emp := &models.Employee{ID: 1, AssociateID: "A100"}
		en, _ := newTestEngine(PointGating{}, catalog, emp)

		// Complete a reachable prefix, then verify un-completing restores
		// both completion state and balance.
		steps := rapid.IntRange(1, size).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			if _, err := en.Toggle("A100", catalog[i].ID); err != nil {
				rt.Fatalf("toggle %d: %v", i, err)
			}
		}

		target := catalog[rapid.IntRange(0, steps-1).Draw(rt, "target")].ID
		before, _ := en.store.EmployeeByAssociateID("A100")
		balanceBefore := before.PointBalance()
		countBefore := before.CompletedCount()

		if _, err := en.Toggle("A100", target); err != nil {
			rt.Fatalf("un-complete: %v", err)
		}
		if _, err := en.Toggle("A100", target); err != nil {
			rt.Fatalf("re-complete: %v", err)
		}

		after, _ := en.store.EmployeeByAssociateID("A100")
		if after.PointBalance() != balanceBefore {
			rt.Fatalf("balance changed across round trip: %d != %d", after.PointBalance(), balanceBefore)
		}
		if after.CompletedCount() != countBefore {
			rt.Fatalf("completion count changed across round trip: %d != %d", after.CompletedCount(), countBefore)
		}
		if !after.HasCompleted(target) {
			rt.Fatal("target task lost its completion")
		}
	})
}
