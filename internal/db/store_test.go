package db

import (
	"testing"
	"time"

	"github.com/onboardhq/onboardpath/internal/models"
	"github.com/onboardhq/onboardpath/internal/progress"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func registerEmployee(t *testing.T, store *Store, associateID string) *models.Employee {
	t.Helper()
	now := time.Now()
	emp, err := store.CreateEmployee(CreateEmployeeRequest{
		AssociateID:    associateID,
		Name:           "Test Associate",
		Department:     "Platform",
		OnboardingDate: &now,
	})
	if err != nil {
		t.Fatalf("failed to register employee: %v", err)
	}
	return emp
}

func TestSeedCatalog(t *testing.T) {
	store := newTestStore(t)

	catalog, err := store.Catalog()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(catalog) != 10 {
		t.Fatalf("expected 10 seeded tasks, got %d", len(catalog))
	}

	for i, task := range catalog {
		if task.SequenceIndex != i {
			t.Fatalf("task %d has sequence index %d", i, task.SequenceIndex)
		}
		if task.Points != 10 {
			t.Fatalf("seeded task %d has %d points, want 10", task.ID, task.Points)
		}
		if task.IsCustom {
			t.Fatalf("seeded task %d must not be custom", task.ID)
		}
	}

	// The safety course and security training take screenshot evidence.
	uploads := 0
	for _, task := range catalog {
		if task.RequiresUpload {
			uploads++
		}
	}
	if uploads != 2 {
		t.Fatalf("expected 2 upload tasks in the default catalog, got %d", uploads)
	}
	if !catalog[0].RequiresUpload {
		t.Fatal("first seeded task must require upload")
	}
}

func TestSeedCatalogIdempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.SeedCatalog(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	catalog, _ := store.Catalog()
	if len(catalog) != 10 {
		t.Fatalf("re-seeding duplicated the catalog: %d tasks", len(catalog))
	}
}

func TestAppendTask(t *testing.T) {
	store := newTestStore(t)

	deadline := time.Date(2026, 12, 15, 0, 0, 0, 0, time.Local)
	task, err := store.AppendTask(CreateTaskRequest{
		Title:          "Security refresher",
		Description:    "Annual refresher course",
		Priority:       3,
		Points:         20,
		RequiresUpload: true,
		Deadline:       &deadline,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.SequenceIndex != 10 {
		t.Fatalf("expected appended task at index 10, got %d", task.SequenceIndex)
	}
	if !task.IsCustom {
		t.Fatal("manager-assigned tasks must be marked custom")
	}

	catalog, _ := store.Catalog()
	if len(catalog) != 11 {
		t.Fatalf("expected 11 tasks after append, got %d", len(catalog))
	}
	if catalog[10].Title != "Security refresher" {
		t.Fatalf("appended task out of order: %q", catalog[10].Title)
	}
}

func TestAppendTaskValidation(t *testing.T) {
	store := newTestStore(t)

	if _, err := store.AppendTask(CreateTaskRequest{Title: "   "}); !progress.IsValidation(err) {
		t.Fatalf("expected validation error for blank title, got %v", err)
	}
	if _, err := store.AppendTask(CreateTaskRequest{Title: "ok", Points: -5}); !progress.IsValidation(err) {
		t.Fatalf("expected validation error for negative points, got %v", err)
	}
}

func TestAppendTaskDefaultPoints(t *testing.T) {
	store := newTestStore(t)

	task, err := store.AppendTask(CreateTaskRequest{Title: "Read the wiki"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Points != 10 {
		t.Fatalf("expected default 10 points, got %d", task.Points)
	}
}

func TestCreateEmployee(t *testing.T) {
	store := newTestStore(t)
	emp := registerEmployee(t, store, "A100")

	if emp.Points != nil {
		t.Fatal("employees default to no point balance")
	}
	if emp.MandatoryDone {
		t.Fatal("mandatory gate starts closed")
	}

	if _, err := store.CreateEmployee(CreateEmployeeRequest{AssociateID: "A100", Name: "Dup"}); !progress.IsValidation(err) {
		t.Fatalf("expected validation error for duplicate associate ID, got %v", err)
	}
}

func TestCreateEmployeeWithPoints(t *testing.T) {
	store := newTestStore(t)

	emp, err := store.CreateEmployee(CreateEmployeeRequest{
		AssociateID: "A200",
		Name:        "Point Tracked",
		TrackPoints: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if emp.Points == nil || *emp.Points != 0 {
		t.Fatal("expected a zero starting balance")
	}
}

func TestEmployeeByAssociateIDNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.EmployeeByAssociateID("ghost")
	if !progress.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSaveProgressRoundTrip(t *testing.T) {
	store := newTestStore(t)
	emp := registerEmployee(t, store, "A100")
	catalog, _ := store.Catalog()

	balance := 20
	emp.Points = &balance
	emp.MandatoryDone = true
	emp.Completions = []models.TaskCompletion{
		{EmployeeID: emp.ID, TaskID: catalog[0].ID, CompletedAt: time.Now()},
		{EmployeeID: emp.ID, TaskID: catalog[1].ID, CompletedAt: time.Now()},
	}
	if err := store.SaveProgress(emp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.EmployeeByAssociateID("A100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CompletedCount() != 2 {
		t.Fatalf("expected 2 completions, got %d", got.CompletedCount())
	}
	if got.PointBalance() != 20 {
		t.Fatalf("expected 20 points, got %d", got.PointBalance())
	}
	if !got.MandatoryDone {
		t.Fatal("mandatory flag was not persisted")
	}

	// Saving a shrunk completion set replaces, not merges.
	got.Completions = got.Completions[:1]
	if err := store.SaveProgress(got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	again, _ := store.EmployeeByAssociateID("A100")
	if again.CompletedCount() != 1 {
		t.Fatalf("expected completions replaced wholesale, got %d", again.CompletedCount())
	}
}

func TestSetMandatoryDone(t *testing.T) {
	store := newTestStore(t)
	registerEmployee(t, store, "A100")

	if err := store.SetMandatoryDone("A100", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	emp, _ := store.EmployeeByAssociateID("A100")
	if !emp.MandatoryDone {
		t.Fatal("expected mandatory gate open")
	}

	if err := store.SetMandatoryDone("ghost", true); !progress.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestSubmissionRoundTrip(t *testing.T) {
	store := newTestStore(t)
	emp := registerEmployee(t, store, "A100")
	catalog, _ := store.Catalog()
	taskID := catalog[0].ID

	sub := &models.Submission{
		Key:         "test-key",
		TaskID:      taskID,
		EmployeeID:  emp.ID,
		Status:      models.SubmissionPending,
		SubmittedAt: time.Now(),
		Attachments: []models.Attachment{
			{Position: 0, FileName: "desk.png", ContentType: "image/png", Data: []byte{1, 2}},
			{Position: 1, FileName: "badge.png", ContentType: "image/png", Data: []byte{3, 4}},
		},
	}
	if err := store.CreateSubmission(sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.SubmissionFor(taskID, emp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected submission back")
	}
	if len(got.Attachments) != 2 {
		t.Fatalf("expected 2 attachments, got %d", len(got.Attachments))
	}
	if got.Attachments[0].FileName != "desk.png" {
		t.Fatal("attachments must come back in upload order")
	}

	// Missing pair returns nil without an error.
	none, err := store.SubmissionFor(taskID+1, emp.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if none != nil {
		t.Fatal("expected nil for missing submission")
	}
}

func TestUpdateSubmissionKeepsEvidence(t *testing.T) {
	store := newTestStore(t)
	emp := registerEmployee(t, store, "A100")
	catalog, _ := store.Catalog()
	taskID := catalog[0].ID

	sub := &models.Submission{
		Key:         "test-key",
		TaskID:      taskID,
		EmployeeID:  emp.ID,
		Status:      models.SubmissionPending,
		SubmittedAt: time.Now(),
		Attachments: []models.Attachment{{Position: 0, FileName: "a.png", ContentType: "image/png", Data: []byte{1}}},
	}
	if err := store.CreateSubmission(sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	sub.Status = models.SubmissionApproved
	sub.DecidedAt = &now
	sub.ManagerFeedback = "nice"
	if err := store.UpdateSubmission(sub); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, _ := store.SubmissionFor(taskID, emp.ID)
	if got.Status != models.SubmissionApproved {
		t.Fatalf("expected approved, got %q", got.Status)
	}
	if got.ManagerFeedback != "nice" {
		t.Fatalf("expected feedback persisted, got %q", got.ManagerFeedback)
	}
	if len(got.Attachments) != 1 {
		t.Fatal("deciding must not touch the evidence")
	}
}

func TestPendingSubmissionsOrdered(t *testing.T) {
	store := newTestStore(t)
	emp := registerEmployee(t, store, "A100")
	catalog, _ := store.Catalog()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		sub := &models.Submission{
			Key:         catalog[i].Title,
			TaskID:      catalog[i].ID,
			EmployeeID:  emp.ID,
			Status:      models.SubmissionPending,
			SubmittedAt: base.Add(time.Duration(2-i) * time.Hour), // reverse order
		}
		if err := store.CreateSubmission(sub); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	pending, err := store.PendingSubmissions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected 3 pending submissions, got %d", len(pending))
	}
	for i := 1; i < len(pending); i++ {
		if pending[i].SubmittedAt.Before(pending[i-1].SubmittedAt) {
			t.Fatal("pending queue must be oldest first")
		}
	}
}

func completeAllTasks(t *testing.T, store *Store, associateID string) {
	t.Helper()
	emp, err := store.EmployeeByAssociateID(associateID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	catalog, _ := store.Catalog()
	for _, task := range catalog {
		emp.Completions = append(emp.Completions, models.TaskCompletion{
			EmployeeID:  emp.ID,
			TaskID:      task.ID,
			CompletedAt: time.Now(),
		})
	}
	if err := store.SaveProgress(emp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateTicketRequiresFullOnboarding(t *testing.T) {
	store := newTestStore(t)
	registerEmployee(t, store, "A100")

	_, err := store.CreateTicket(CreateTicketRequest{
		AssociateID: "A100",
		IncidentID:  "INC0000123",
		Customer:    "Acme",
		Status:      models.TicketResolved,
	})
	if !progress.IsValidation(err) {
		t.Fatalf("expected validation error before onboarding completes, got %v", err)
	}
}

func TestCreateTicket(t *testing.T) {
	store := newTestStore(t)
	registerEmployee(t, store, "A100")
	completeAllTasks(t, store, "A100")

	slaMet := true
	ticket, err := store.CreateTicket(CreateTicketRequest{
		AssociateID:     "A100",
		IncidentID:      "inc0000123",
		Customer:        "Acme",
		AssignedGroup:   "L2 Support",
		Priority:        "P2",
		ApplicationName: "Billing",
		Status:          models.TicketResolved,
		SLAMet:          &slaMet,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ticket.IncidentID != "INC0000123" {
		t.Fatalf("expected normalized incident ID, got %q", ticket.IncidentID)
	}
	if ticket.Key == "" {
		t.Fatal("expected a generated ticket key")
	}

	tickets, err := store.TicketsForAssociate("A100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tickets) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(tickets))
	}
	if tickets[0].Employee.AssociateID != "A100" {
		t.Fatal("expected employee preloaded on ticket")
	}
}

func TestCreateTicketValidation(t *testing.T) {
	store := newTestStore(t)
	registerEmployee(t, store, "A100")
	completeAllTasks(t, store, "A100")

	base := CreateTicketRequest{
		AssociateID: "A100",
		IncidentID:  "INC0000123",
		Customer:    "Acme",
		Status:      models.TicketResolved,
	}

	bad := base
	bad.IncidentID = "not an id"
	if _, err := store.CreateTicket(bad); !progress.IsValidation(err) {
		t.Fatalf("expected validation error for bad incident ID, got %v", err)
	}

	bad = base
	bad.Customer = "  "
	if _, err := store.CreateTicket(bad); !progress.IsValidation(err) {
		t.Fatalf("expected validation error for missing customer, got %v", err)
	}

	bad = base
	bad.Status = "Open"
	if _, err := store.CreateTicket(bad); !progress.IsValidation(err) {
		t.Fatalf("expected validation error for bad status, got %v", err)
	}

	missed := false
	bad = base
	bad.SLAMet = &missed
	if _, err := store.CreateTicket(bad); !progress.IsValidation(err) {
		t.Fatalf("expected validation error for missed SLA without reason, got %v", err)
	}

	bad.ReasonForDelay = "customer unreachable"
	if _, err := store.CreateTicket(bad); err != nil {
		t.Fatalf("missed SLA with reason should pass, got %v", err)
	}
}
