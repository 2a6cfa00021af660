// Package report computes manager-facing rollups over employee progress.
// Everything here is read-side and pure: no store access, no mutation.
package report

import (
	"math"
	"sort"

	"github.com/onboardhq/onboardpath/internal/models"
)

// Buckets partitions employees by onboarding completion. Every employee
// falls into exactly one of the three buckets.
type Buckets struct {
	Total          int
	FullyOnboarded int
	InProgress     int
	NotStarted     int
}

// Bucketize partitions employees against the catalog size.
func Bucketize(employees []models.Employee, catalog []models.TaskDefinition) Buckets {
	b := Buckets{Total: len(employees)}
	for i := range employees {
		done := employees[i].CompletedCount()
		switch {
		case done == len(catalog):
			b.FullyOnboarded++
		case done > 0 && done < len(catalog):
			b.InProgress++
		default:
			b.NotStarted++
		}
	}
	return b
}

// TaskRate is the completion rate of one catalog task across all employees.
type TaskRate struct {
	TaskID         uint
	CompletedCount int
	TotalUsers     int
}

// Percent returns the rounded completion percentage for the task.
func (r TaskRate) Percent() int {
	if r.TotalUsers == 0 {
		return 0
	}
	return int(math.Round(100 * float64(r.CompletedCount) / float64(r.TotalUsers)))
}

// PerTaskRate counts, for every catalog task, how many employees completed
// it. The denominator is always the full roster, not eligible employees.
func PerTaskRate(employees []models.Employee, catalog []models.TaskDefinition) map[uint]TaskRate {
	rates := make(map[uint]TaskRate, len(catalog))
	for _, task := range catalog {
		rate := TaskRate{TaskID: task.ID, TotalUsers: len(employees)}
		for i := range employees {
			if employees[i].HasCompleted(task.ID) {
				rate.CompletedCount++
			}
		}
		rates[task.ID] = rate
	}
	return rates
}

// OverallRate is the rounded percentage of all (task, employee) cells that
// are completed. Empty rosters and empty catalogs are 0, never a division
// by zero.
func OverallRate(employees []models.Employee, catalog []models.TaskDefinition) int {
	if len(employees) == 0 || len(catalog) == 0 {
		return 0
	}
	completed := 0
	for _, rate := range PerTaskRate(employees, catalog) {
		completed += rate.CompletedCount
	}
	return int(math.Round(100 * float64(completed) / float64(len(catalog)*len(employees))))
}

// RankByPoints orders employees by descending point balance. Employees
// without a point balance are excluded entirely rather than ranked at zero.
// Ties keep input (registration) order.
func RankByPoints(employees []models.Employee) []models.Employee {
	ranked := make([]models.Employee, 0, len(employees))
	for i := range employees {
		if employees[i].Points != nil {
			ranked = append(ranked, employees[i])
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].PointBalance() > ranked[j].PointBalance()
	})
	return ranked
}
