package requisition

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrNotFound is returned when no requisition has the requested id.
	ErrNotFound = errors.New("requisition not found")
	// ErrInvalidStatus is returned for a status outside the recognized set.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidPrice marks an item price that is not a number.
	ErrInvalidPrice = errors.New("invalid item price - must be a number")
)

// ParseStatus title-cases raw and matches it against the recognized statuses.
func ParseStatus(raw string) (Status, error) {
	normalized := cases.Title(language.Und).String(strings.TrimSpace(raw))
	for _, status := range Statuses {
		if string(status) == normalized {
			return status, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
}

// ApprovalRef derives the approval reference: the staff id followed by the
// last three characters of the requisition id.
func ApprovalRef(staffID, requisitionID string) string {
	suffix := requisitionID
	if len(suffix) > approvalRefSuffixLen {
		suffix = suffix[len(suffix)-approvalRefSuffixLen:]
	}
	return staffID + suffix
}
