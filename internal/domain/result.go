package domain

import (
	"encoding/json"
	"fmt"
)

// UnknownFailure is the failure category assigned to a failed result whose
// validation outcome carries no error text.
const UnknownFailure = "Unknown Processing Error"

// FileResult is the outcome of running one evidence document through the
// extraction step. Produced upstream; read-only inside the engine.
type FileResult struct {
	ID          string                 `json:"id"`
	File        string                 `json:"file,omitempty"`
	Success     bool                   `json:"success"`
	Metrics     map[string]MetricValue `json:"metrics,omitempty"`
	Validation  ValidationOutcome      `json:"validation"`
	DurationMs  int64                  `json:"duration_ms,omitempty"`
	ContentHash string                 `json:"content_hash,omitempty"`
}

// ValidationOutcome carries per-file validation findings as data. Errors here
// are never raised; they are aggregated into the batch summary.
type ValidationOutcome struct {
	Errors       []string `json:"errors,omitempty"`
	Warnings     []string `json:"warnings,omitempty"`
	RisksFlagged []string `json:"risks_flagged,omitempty"`
}

// FirstError returns the first validation error, or UnknownFailure when a
// failed result reported none.
func (r FileResult) FirstError() string {
	if len(r.Validation.Errors) > 0 {
		return r.Validation.Errors[0]
	}
	return UnknownFailure
}

// MetricValue is an extracted metric value: either numeric or free text.
// Extraction output is loosely typed, so both shapes must round-trip.
type MetricValue struct {
	Number  float64
	Text    string
	Numeric bool
}

// NumberValue builds a numeric MetricValue.
func NumberValue(v float64) MetricValue { return MetricValue{Number: v, Numeric: true} }

// TextValue builds a textual MetricValue.
func TextValue(s string) MetricValue { return MetricValue{Text: s} }

func (v MetricValue) MarshalJSON() ([]byte, error) {
	if v.Numeric {
		return json.Marshal(v.Number)
	}
	return json.Marshal(v.Text)
}

func (v *MetricValue) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = NumberValue(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = TextValue(s)
		return nil
	}
	return fmt.Errorf("metric value must be a number or a string, got %s", string(data))
}

func (v MetricValue) String() string {
	if v.Numeric {
		return fmt.Sprintf("%g", v.Number)
	}
	return v.Text
}
