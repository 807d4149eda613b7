package requisition

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status is the lifecycle state of a requisition.
type Status string

const (
	StatusPending     Status = "Pending"
	StatusApproved    Status = "Approved"
	StatusNotApproved Status = "Not Approved"
)

// Statuses lists every recognized status in display order.
var Statuses = []Status{StatusApproved, StatusPending, StatusNotApproved}

// Item is one priced line of a requisition.
type Item struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Requisition is a submitted purchase request.
type Requisition struct {
	ID          string          `json:"requisition_id"`
	Date        string          `json:"date"`
	StaffID     string          `json:"staff_id"`
	StaffName   string          `json:"staff_name"`
	Items       []Item          `json:"items"`
	Total       decimal.Decimal `json:"total"`
	Status      Status          `json:"status"`
	ApprovalRef *string         `json:"approval_ref,omitempty"`
}

// Reference returns the approval reference and whether one is set.
func (r Requisition) Reference() (string, bool) {
	if r.ApprovalRef == nil {
		return "", false
	}
	return *r.ApprovalRef, true
}

func (r Requisition) clone() Requisition {
	out := r
	out.Items = append([]Item(nil), r.Items...)
	if r.ApprovalRef != nil {
		ref := *r.ApprovalRef
		out.ApprovalRef = &ref
	}
	return out
}

// ItemEntry is one step of item entry: either an item or the terminator.
type ItemEntry struct {
	Name  string
	Price string
	Done  bool
}

// Submission carries everything needed to create a requisition.
type Submission struct {
	Date      string
	StaffID   string
	StaffName string
	Entries   []ItemEntry
}

// ItemRejection reports an item skipped because its price did not parse.
type ItemRejection struct {
	Position int
	Name     string
	Input    string
	Err      error
}

func (r *ItemRejection) Error() string {
	return fmt.Sprintf("item #%d %q: %v", r.Position, r.Name, r.Err)
}

func (r *ItemRejection) Unwrap() error { return r.Err }

// Statistics counts requisitions per status.
type Statistics struct {
	Total       int `json:"total"`
	Approved    int `json:"approved"`
	Pending     int `json:"pending"`
	NotApproved int `json:"not_approved"`
}

// EventType names a ledger mutation.
type EventType string

const (
	EventSubmitted     EventType = "requisition_submitted"
	EventStatusChanged EventType = "requisition_status_changed"
)

// Event describes a ledger mutation after it has been applied.
type Event struct {
	Type           EventType
	Requisition    Requisition
	PreviousStatus Status
}
