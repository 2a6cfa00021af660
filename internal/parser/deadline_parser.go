package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseDeadline parses various deadline formats
// Supported formats:
// - dd/mm/yyyy (e.g., "15/12/2026")
// - X days (e.g., "3 days", "1 day")
// - X weeks (e.g., "2 weeks", "1 week")
func ParseDeadline(input string) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	if deadline, err := parseDateFormat(input); err == nil {
		return deadline, nil
	}

	if deadline, err := parseRelativeTime(input); err == nil {
		return deadline, nil
	}

	return nil, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, X days, or X weeks")
}

// parseDateFormat parses dd/mm/yyyy format
func parseDateFormat(input string) (*time.Time, error) {
	dateRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	matches := dateRegex.FindStringSubmatch(input)

	if len(matches) != 4 {
		return nil, fmt.Errorf("invalid date format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if year < 2024 || year > 2100 {
		return nil, fmt.Errorf("year must be between 2024 and 2100")
	}

	deadline := time.Date(year, time.Month(month), day, 23, 59, 59, 0, time.Local)

	// Check if date is valid (handles leap years, etc.)
	if deadline.Day() != day || deadline.Month() != time.Month(month) || deadline.Year() != year {
		return nil, fmt.Errorf("invalid date")
	}

	return &deadline, nil
}

// parseRelativeTime parses relative formats like "3 days" or "2 weeks"
func parseRelativeTime(input string) (*time.Time, error) {
	input = strings.ToLower(input)

	relativeRegex := regexp.MustCompile(`^(\d+)\s+(day|days|week|weeks)$`)
	matches := relativeRegex.FindStringSubmatch(input)

	if len(matches) != 3 {
		return nil, fmt.Errorf("invalid relative time format")
	}

	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return nil, fmt.Errorf("invalid number")
	}

	unit := matches[2]
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch unit {
	case "day", "days":
		if amount < 1 || amount > 365 {
			return nil, fmt.Errorf("days must be between 1 and 365")
		}
		deadline := today.AddDate(0, 0, amount).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		return &deadline, nil

	case "week", "weeks":
		if amount < 1 || amount > 52 {
			return nil, fmt.Errorf("weeks must be between 1 and 52")
		}
		deadline := today.AddDate(0, 0, amount*7).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		return &deadline, nil

	default:
		return nil, fmt.Errorf("unsupported time unit")
	}
}

// FormatDeadline formats a deadline for display
func FormatDeadline(deadline *time.Time) string {
	if deadline == nil {
		return ""
	}

	now := time.Now()

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dueDay := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, deadline.Location())
	daysDiff := int(dueDay.Sub(today).Hours() / 24)

	dateStr := deadline.Format("02/01/2006")

	if daysDiff < 0 {
		return fmt.Sprintf("OVERDUE (%s)", dateStr)
	} else if daysDiff == 0 {
		return fmt.Sprintf("due today (%s)", dateStr)
	} else if daysDiff == 1 {
		return fmt.Sprintf("due tomorrow (%s)", dateStr)
	} else if daysDiff <= 7 {
		return fmt.Sprintf("due %s (in %d days)", dateStr, daysDiff)
	}
	return fmt.Sprintf("due %s", dateStr)
}
