// Package script replays a YAML list of ledger requests without a terminal.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Outcomes reported per step.
const (
	OutcomeSubmitted     = "submitted"
	OutcomeUpdated       = "updated"
	OutcomeNotFound      = "not_found"
	OutcomeInvalidStatus = "invalid_status"
	OutcomeListed        = "listed"
	OutcomeCounted       = "counted"
)

// Script is an ordered list of requests.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step holds exactly one request.
type Step struct {
	Submit     *SubmitStep `yaml:"submit,omitempty"`
	Update     *UpdateStep `yaml:"update,omitempty"`
	List       *struct{}   `yaml:"list,omitempty"`
	Statistics *struct{}   `yaml:"statistics,omitempty"`
}

// SubmitStep describes a submission. Prices are kept as written so that
// malformed values reach the ledger's own parsing.
type SubmitStep struct {
	Date      string     `yaml:"date"`
	StaffID   string     `yaml:"staff_id"`
	StaffName string     `yaml:"staff_name"`
	Items     []ItemStep `yaml:"items"`
}

// ItemStep is one line item of a submission.
type ItemStep struct {
	Name  string `yaml:"name"`
	Price string `yaml:"price"`
}

// UpdateStep describes a status change.
type UpdateStep struct {
	RequisitionID string `yaml:"requisition_id"`
	Status        string `yaml:"status"`
}

func (s Step) kind() (string, error) {
	kinds := make([]string, 0, 1)
	if s.Submit != nil {
		kinds = append(kinds, "submit")
	}
	if s.Update != nil {
		kinds = append(kinds, "update")
	}
	if s.List != nil {
		kinds = append(kinds, "list")
	}
	if s.Statistics != nil {
		kinds = append(kinds, "statistics")
	}
	if len(kinds) != 1 {
		return "", fmt.Errorf("exactly one of submit, update, list, statistics is required, got %v", kinds)
	}
	return kinds[0], nil
}

// Parse decodes a script, rejecting unknown keys.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return &Script{}, nil
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, step := range s.Steps {
		if _, err := step.kind(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &s, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return Parse(data)
}
