package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParsedAssignment represents a catalog task parsed from quick syntax
type ParsedAssignment struct {
	Title          string
	Priority       int
	Points         int
	RequiresUpload bool
	Deadline       *time.Time
	Errors         []string
}

// ParseAssignment extracts task metadata from a quick-assign string.
// Syntax: "Task title +priority pts:20 due:3days upload"
func ParseAssignment(input string) ParsedAssignment {
	result := ParsedAssignment{
		Title:  input,
		Errors: []string{},
	}

	// Extract priority (+high, +3, +medium, etc.)
	priorityRegex := regexp.MustCompile(`\+([a-zA-Z0-9]+)`)
	priorityMatches := priorityRegex.FindStringSubmatch(input)
	if len(priorityMatches) > 1 {
		priority, ok := priorityToInt(priorityMatches[1])
		if ok {
			result.Priority = priority
		} else {
			result.Errors = append(result.Errors, "Invalid priority '"+priorityMatches[1]+"'. Use: low, medium, high, 1, 2, or 3")
		}
		input = priorityRegex.ReplaceAllString(input, "")
	}

	// Extract points (pts:20)
	pointsRegex := regexp.MustCompile(`pts:(\d+)`)
	pointsMatches := pointsRegex.FindStringSubmatch(input)
	if len(pointsMatches) > 1 {
		points, err := strconv.Atoi(pointsMatches[1])
		if err != nil || points < 1 {
			result.Errors = append(result.Errors, "Invalid points '"+pointsMatches[1]+"'")
		} else {
			result.Points = points
		}
		input = pointsRegex.ReplaceAllString(input, "")
	}

	// Extract deadline (due:3days, due:15/12/2026, etc.)
	dueRegex := regexp.MustCompile(`due:([^\s]+)`)
	dueMatches := dueRegex.FindStringSubmatch(input)
	if len(dueMatches) > 1 {
		deadline, err := ParseDeadline(normalizeDueToken(dueMatches[1]))
		if err != nil {
			result.Errors = append(result.Errors, "Invalid deadline '"+dueMatches[1]+"': "+err.Error())
		} else {
			result.Deadline = deadline
		}
		input = dueRegex.ReplaceAllString(input, "")
	}

	// Extract the upload marker
	uploadRegex := regexp.MustCompile(`\bupload\b`)
	if uploadRegex.MatchString(input) {
		result.RequiresUpload = true
		input = uploadRegex.ReplaceAllString(input, "")
	}

	// Clean up the title (remove extra spaces)
	result.Title = strings.Join(strings.Fields(input), " ")

	return result
}

// normalizeDueToken turns compact tokens like "3days" into "3 days" so the
// deadline parser accepts both spellings.
func normalizeDueToken(token string) string {
	compactRegex := regexp.MustCompile(`^(\d+)(day|days|week|weeks)$`)
	if matches := compactRegex.FindStringSubmatch(strings.ToLower(token)); len(matches) == 3 {
		return matches[1] + " " + matches[2]
	}
	return token
}

// priorityToInt converts a priority token to its numeric form
func priorityToInt(priority string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(priority)) {
	case "low", "1":
		return 1, true
	case "medium", "med", "2":
		return 2, true
	case "high", "3":
		return 3, true
	default:
		return 0, false
	}
}
