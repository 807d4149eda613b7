package requisition

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	idBase               = 10000
	approvalRefSuffixLen = 3
)

// DefaultAutoApproveLimit is the total below which a requisition is approved on submission.
var DefaultAutoApproveLimit = decimal.NewFromInt(500)

// ErrDraftCommitted is returned when a draft is committed twice.
var ErrDraftCommitted = errors.New("draft already committed")

// Option configures a Ledger.
type Option func(*Ledger)

// WithAutoApproveLimit overrides DefaultAutoApproveLimit.
func WithAutoApproveLimit(limit decimal.Decimal) Option {
	return func(l *Ledger) { l.limit = limit }
}

// WithObserver registers fn to be called after every mutation.
func WithObserver(fn func(Event)) Option {
	return func(l *Ledger) {
		if fn != nil {
			l.observers = append(l.observers, fn)
		}
	}
}

// Ledger holds requisitions in submission order. It is not safe for
// concurrent use.
type Ledger struct {
	records   []Requisition
	limit     decimal.Decimal
	observers []func(Event)
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{limit: DefaultAutoApproveLimit}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AutoApproveLimit returns the approval threshold in use.
func (l *Ledger) AutoApproveLimit() decimal.Decimal { return l.limit }

// Len returns the number of requisitions.
func (l *Ledger) Len() int { return len(l.records) }

func (l *Ledger) nextID() string {
	return strconv.Itoa(idBase + len(l.records) + 1)
}

// NewDraft starts a requisition and reserves the next id for display.
func (l *Ledger) NewDraft(date, staffID, staffName string) *Draft {
	return &Draft{
		id:        l.nextID(),
		date:      date,
		staffID:   staffID,
		staffName: staffName,
	}
}

// Commit classifies the draft and appends it to the ledger.
func (l *Ledger) Commit(d *Draft) (Requisition, error) {
	if d.committed {
		return Requisition{}, ErrDraftCommitted
	}
	d.committed = true
	d.done = true

	record := Requisition{
		ID:        l.nextID(),
		Date:      d.date,
		StaffID:   d.staffID,
		StaffName: d.staffName,
		Items:     d.Items(),
		Total:     d.total,
		Status:    StatusPending,
	}
	d.id = record.ID
	if record.Total.LessThan(l.limit) {
		record.Status = StatusApproved
		ref := ApprovalRef(record.StaffID, record.ID)
		record.ApprovalRef = &ref
	}

	l.records = append(l.records, record)
	slog.Debug("requisition submitted",
		"id", record.ID,
		"staff_id", record.StaffID,
		"items", len(record.Items),
		"total", record.Total.String(),
		"status", record.Status,
	)
	l.notify(Event{Type: EventSubmitted, Requisition: record.clone()})
	return record.clone(), nil
}

// Submit creates a requisition from a complete submission. Items whose price
// does not parse are skipped and reported.
func (l *Ledger) Submit(sub Submission) (Requisition, []ItemRejection) {
	draft := l.NewDraft(sub.Date, sub.StaffID, sub.StaffName)
	for _, entry := range sub.Entries {
		draft.Apply(entry)
		if draft.Done() {
			break
		}
	}
	record, _ := l.Commit(draft)
	return record, draft.Rejections()
}

// Find returns the requisition with the given id.
func (l *Ledger) Find(id string) (Requisition, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return Requisition{}, false
	}
	return l.records[idx].clone(), true
}

func (l *Ledger) indexOf(id string) int {
	id = strings.TrimSpace(id)
	for i := range l.records {
		if l.records[i].ID == id {
			return i
		}
	}
	return -1
}

// UpdateStatus sets the status of a requisition. newStatus is title-cased
// before matching. Approving (re)derives the approval reference; any other
// status clears it. The auto-approval limit is not consulted.
func (l *Ledger) UpdateStatus(id, newStatus string) (Requisition, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return Requisition{}, ErrNotFound
	}
	status, err := ParseStatus(newStatus)
	if err != nil {
		return Requisition{}, err
	}

	record := &l.records[idx]
	previous := record.Status
	record.Status = status
	if status == StatusApproved {
		ref := ApprovalRef(record.StaffID, record.ID)
		record.ApprovalRef = &ref
	} else {
		record.ApprovalRef = nil
	}

	slog.Debug("requisition status updated", "id", record.ID, "from", previous, "to", status)
	l.notify(Event{Type: EventStatusChanged, Requisition: record.clone(), PreviousStatus: previous})
	return record.clone(), nil
}

// List returns every requisition in submission order.
func (l *Ledger) List() []Requisition {
	out := make([]Requisition, 0, len(l.records))
	for _, r := range l.records {
		out = append(out, r.clone())
	}
	return out
}

// Statistics counts requisitions per status.
func (l *Ledger) Statistics() Statistics {
	stats := Statistics{Total: len(l.records)}
	for _, r := range l.records {
		switch r.Status {
		case StatusApproved:
			stats.Approved++
		case StatusPending:
			stats.Pending++
		case StatusNotApproved:
			stats.NotApproved++
		}
	}
	return stats
}

func (l *Ledger) notify(evt Event) {
	for _, fn := range l.observers {
		fn(evt)
	}
}
