package parser

import (
	"testing"
	"time"
)

func TestNormalizeIncidentID(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"INC0012345", "INC0012345", false},
		{"inc0012345", "INC0012345", false},
		{"  sev-42  ", "SEV-42", false},
		{"", "", false},
		{"not an id", "", true},
		{"INC", "", true},
		{"-42", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizeIncidentID(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("NormalizeIncidentID(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("NormalizeIncidentID(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("NormalizeIncidentID(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestIsValidIncidentFormat(t *testing.T) {
	if !IsValidIncidentFormat("inc123") {
		t.Fatal("lowercase INC format should be valid")
	}
	if !IsValidIncidentFormat("") {
		t.Fatal("empty is valid (optional field)")
	}
	if IsValidIncidentFormat("123-abc") {
		t.Fatal("digits-first format is invalid")
	}
}

func TestParseDeadlineDateFormat(t *testing.T) {
	deadline, err := ParseDeadline("15/12/2026")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deadline.Day() != 15 || deadline.Month() != time.December || deadline.Year() != 2026 {
		t.Fatalf("wrong date: %v", deadline)
	}
	if deadline.Hour() != 23 || deadline.Minute() != 59 {
		t.Fatal("deadline should land at end of day")
	}
}

func TestParseDeadlineRelative(t *testing.T) {
	deadline, err := ParseDeadline("3 days")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Now().AddDate(0, 0, 3)
	if deadline.Day() != want.Day() {
		t.Fatalf("expected 3 days out, got %v", deadline)
	}

	deadline, err = ParseDeadline("2 weeks")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want = time.Now().AddDate(0, 0, 14)
	if deadline.Day() != want.Day() {
		t.Fatalf("expected 2 weeks out, got %v", deadline)
	}
}

func TestParseDeadlineInvalid(t *testing.T) {
	for _, in := range []string{"31/02/2026", "15/13/2026", "15/12/2020", "soon", "0 days", "400 days"} {
		if _, err := ParseDeadline(in); err == nil {
			t.Fatalf("ParseDeadline(%q): expected error", in)
		}
	}
}

func TestParseDeadlineEmpty(t *testing.T) {
	deadline, err := ParseDeadline("")
	if err != nil || deadline != nil {
		t.Fatalf("empty input should be nil deadline, got %v, %v", deadline, err)
	}
}

func TestFormatDeadline(t *testing.T) {
	if FormatDeadline(nil) != "" {
		t.Fatal("nil deadline formats as empty")
	}

	yesterday := time.Now().AddDate(0, 0, -1)
	if got := FormatDeadline(&yesterday); len(got) < 7 || got[:7] != "OVERDUE" {
		t.Fatalf("expected OVERDUE prefix, got %q", got)
	}

	today := time.Now()
	if got := FormatDeadline(&today); got[:9] != "due today" {
		t.Fatalf("expected due today, got %q", got)
	}

	tomorrow := time.Now().AddDate(0, 0, 1)
	if got := FormatDeadline(&tomorrow); got[:12] != "due tomorrow" {
		t.Fatalf("expected due tomorrow, got %q", got)
	}
}

func TestParseAssignment(t *testing.T) {
	parsed := ParseAssignment("Security refresher +high pts:20 due:3days upload")
	if len(parsed.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", parsed.Errors)
	}
	if parsed.Title != "Security refresher" {
		t.Fatalf("title = %q", parsed.Title)
	}
	if parsed.Priority != 3 {
		t.Fatalf("priority = %d, want 3", parsed.Priority)
	}
	if parsed.Points != 20 {
		t.Fatalf("points = %d, want 20", parsed.Points)
	}
	if !parsed.RequiresUpload {
		t.Fatal("expected upload flag")
	}
	if parsed.Deadline == nil {
		t.Fatal("expected a deadline")
	}
}

func TestParseAssignmentPlainTitle(t *testing.T) {
	parsed := ParseAssignment("Just read the handbook")
	if len(parsed.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", parsed.Errors)
	}
	if parsed.Title != "Just read the handbook" {
		t.Fatalf("title = %q", parsed.Title)
	}
	if parsed.Priority != 0 || parsed.Points != 0 || parsed.RequiresUpload || parsed.Deadline != nil {
		t.Fatal("plain title must not pick up metadata")
	}
}

func TestParseAssignmentBadTokens(t *testing.T) {
	parsed := ParseAssignment("Title +urgent")
	if len(parsed.Errors) == 0 {
		t.Fatal("expected error for unknown priority token")
	}

	parsed = ParseAssignment("Title due:someday")
	if len(parsed.Errors) == 0 {
		t.Fatal("expected error for bad deadline token")
	}
}

func TestParseAssignmentNumericPriority(t *testing.T) {
	parsed := ParseAssignment("Title +2")
	if parsed.Priority != 2 {
		t.Fatalf("priority = %d, want 2", parsed.Priority)
	}
}
