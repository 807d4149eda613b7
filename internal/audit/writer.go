package audit

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MEKXH/requisition/internal/requisition"
	"github.com/google/uuid"
)

const (
	auditFileMode = 0644
	auditDirMode  = 0755
)

// Event is one audit record written as a single JSON line.
type Event struct {
	ID             string    `json:"id"`
	Time           time.Time `json:"time"`
	Type           string    `json:"type"`
	RequisitionID  string    `json:"requisition_id,omitempty"`
	StaffID        string    `json:"staff_id,omitempty"`
	Total          string    `json:"total,omitempty"`
	Status         string    `json:"status,omitempty"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	ApprovalRef    string    `json:"approval_ref,omitempty"`
}

// Writer appends audit events to a JSONL file.
type Writer struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

// NewWriter creates an append-only audit writer for path.
func NewWriter(path string) *Writer {
	return &Writer{
		path: path,
		now:  time.Now,
	}
}

// Path returns the file events are appended to.
func (w *Writer) Path() string { return w.path }

// Append writes one event as one JSONL line. Missing id and time are filled in.
func (w *Writer) Append(event Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Time.IsZero() {
		event.Time = w.now().UTC()
	}

	if err := os.MkdirAll(filepath.Dir(w.path), auditDirMode); err != nil {
		return fmt.Errorf("create audit dir: %w", err)
	}

	file, err := os.OpenFile(w.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, auditFileMode)
	if err != nil {
		return fmt.Errorf("open audit file: %w", err)
	}
	defer file.Close()

	encoded, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	encoded = append(encoded, '\n')

	if _, err := file.Write(encoded); err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync audit file: %w", err)
	}
	return nil
}

// Observe records a ledger mutation. Write failures are logged, never returned,
// so the audit trail cannot block a submission or status change.
func (w *Writer) Observe(evt requisition.Event) {
	if err := w.Append(FromLedgerEvent(evt)); err != nil {
		slog.Warn("audit append failed", "type", evt.Type, "requisition_id", evt.Requisition.ID, "error", err)
	}
}

// FromLedgerEvent converts a ledger mutation into an audit record.
func FromLedgerEvent(evt requisition.Event) Event {
	r := evt.Requisition
	out := Event{
		Type:           string(evt.Type),
		RequisitionID:  r.ID,
		StaffID:        r.StaffID,
		Total:          r.Total.StringFixed(2),
		Status:         string(r.Status),
		PreviousStatus: string(evt.PreviousStatus),
	}
	if ref, ok := r.Reference(); ok {
		out.ApprovalRef = ref
	}
	return out
}
