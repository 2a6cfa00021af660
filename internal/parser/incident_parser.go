package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var incidentRegex = regexp.MustCompile(`^(INC\d+|[A-Z]+-\d+)$`)

// NormalizeIncidentID normalizes incident IDs to uppercase.
// Accepts formats like:
// - "INC0012345", "inc0012345" -> "INC0012345"
// - "SEV-42", "sev-42" -> "SEV-42"
// Returns error if format is invalid
func NormalizeIncidentID(incidentID string) (string, error) {
	if incidentID == "" {
		return "", nil
	}

	incidentID = strings.ToUpper(strings.TrimSpace(incidentID))

	if !incidentRegex.MatchString(incidentID) {
		return "", fmt.Errorf("invalid incident ID format. Use: INC followed by digits, or XXX-111")
	}

	return incidentID, nil
}

// IsValidIncidentFormat checks if a string matches the incident ID format
func IsValidIncidentFormat(incidentID string) bool {
	if incidentID == "" {
		return true // Empty is valid (optional field)
	}

	incidentID = strings.ToUpper(strings.TrimSpace(incidentID))
	return incidentRegex.MatchString(incidentID)
}
