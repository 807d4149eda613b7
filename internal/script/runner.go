package script

import (
	"errors"
	"fmt"

	"github.com/MEKXH/requisition/internal/requisition"
	"gopkg.in/yaml.v3"
)

// Result is the response to one step.
type Result struct {
	Step         int             `yaml:"step"`
	Kind         string          `yaml:"kind"`
	Outcome      string          `yaml:"outcome"`
	Requisition  *RecordView     `yaml:"requisition,omitempty"`
	Rejections   []RejectionView `yaml:"rejections,omitempty"`
	Requisitions []RecordView    `yaml:"requisitions,omitempty"`
	Statistics   *StatisticsView `yaml:"statistics,omitempty"`

	record *requisition.Requisition
}

// Record returns the requisition as it stood right after this step, for
// submit and successful update steps.
func (r Result) Record() (requisition.Requisition, bool) {
	if r.record == nil {
		return requisition.Requisition{}, false
	}
	return *r.record, true
}

// RecordView is the serialized form of a requisition.
type RecordView struct {
	ID          string     `yaml:"requisition_id"`
	Date        string     `yaml:"date"`
	StaffID     string     `yaml:"staff_id"`
	StaffName   string     `yaml:"staff_name"`
	Items       []ItemStep `yaml:"items"`
	Total       string     `yaml:"total"`
	Status      string     `yaml:"status"`
	ApprovalRef string     `yaml:"approval_ref,omitempty"`
}

// RejectionView reports an item skipped for a malformed price.
type RejectionView struct {
	Position int    `yaml:"position"`
	Name     string `yaml:"name"`
	Price    string `yaml:"price"`
	Reason   string `yaml:"reason"`
}

// StatisticsView is the serialized form of ledger statistics.
type StatisticsView struct {
	Total       int `yaml:"total"`
	Approved    int `yaml:"approved"`
	Pending     int `yaml:"pending"`
	NotApproved int `yaml:"not_approved"`
}

// Run replays every step against ledger in order.
func Run(s *Script, ledger *requisition.Ledger) ([]Result, error) {
	results := make([]Result, 0, len(s.Steps))
	for i, step := range s.Steps {
		kind, err := step.kind()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		result := Result{Step: i + 1, Kind: kind}

		switch kind {
		case "submit":
			record, rejections := ledger.Submit(toSubmission(step.Submit))
			view := NewRecordView(record)
			result.Outcome = OutcomeSubmitted
			result.Requisition = &view
			result.record = &record
			for _, rej := range rejections {
				result.Rejections = append(result.Rejections, RejectionView{
					Position: rej.Position,
					Name:     rej.Name,
					Price:    rej.Input,
					Reason:   rej.Err.Error(),
				})
			}
		case "update":
			record, err := ledger.UpdateStatus(step.Update.RequisitionID, step.Update.Status)
			switch {
			case errors.Is(err, requisition.ErrNotFound):
				result.Outcome = OutcomeNotFound
			case errors.Is(err, requisition.ErrInvalidStatus):
				result.Outcome = OutcomeInvalidStatus
			case err != nil:
				return results, fmt.Errorf("step %d: %w", i+1, err)
			default:
				view := NewRecordView(record)
				result.Outcome = OutcomeUpdated
				result.Requisition = &view
				result.record = &record
			}
		case "list":
			result.Outcome = OutcomeListed
			result.Requisitions = []RecordView{}
			for _, record := range ledger.List() {
				result.Requisitions = append(result.Requisitions, NewRecordView(record))
			}
		case "statistics":
			stats := ledger.Statistics()
			result.Outcome = OutcomeCounted
			result.Statistics = &StatisticsView{
				Total:       stats.Total,
				Approved:    stats.Approved,
				Pending:     stats.Pending,
				NotApproved: stats.NotApproved,
			}
		}
		results = append(results, result)
	}
	return results, nil
}

func toSubmission(step *SubmitStep) requisition.Submission {
	sub := requisition.Submission{
		Date:      step.Date,
		StaffID:   step.StaffID,
		StaffName: step.StaffName,
		Entries:   make([]requisition.ItemEntry, 0, len(step.Items)+1),
	}
	for _, item := range step.Items {
		sub.Entries = append(sub.Entries, requisition.ItemEntry{Name: item.Name, Price: item.Price})
	}
	sub.Entries = append(sub.Entries, requisition.ItemEntry{Done: true})
	return sub
}

// NewRecordView converts a requisition for serialization.
func NewRecordView(r requisition.Requisition) RecordView {
	view := RecordView{
		ID:        r.ID,
		Date:      r.Date,
		StaffID:   r.StaffID,
		StaffName: r.StaffName,
		Items:     make([]ItemStep, 0, len(r.Items)),
		Total:     r.Total.StringFixed(2),
		Status:    string(r.Status),
	}
	for _, item := range r.Items {
		view.Items = append(view.Items, ItemStep{Name: item.Name, Price: item.Price.String()})
	}
	if ref, ok := r.Reference(); ok {
		view.ApprovalRef = ref
	}
	return view
}

// Encode renders results as a YAML document.
func Encode(results []Result) ([]byte, error) {
	out, err := yaml.Marshal(struct {
		Results []Result `yaml:"results"`
	}{Results: results})
	if err != nil {
		return nil, fmt.Errorf("encode results: %w", err)
	}
	return out, nil
}
