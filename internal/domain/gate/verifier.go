// Package gate runs the deterministic guardrail checks over a pipeline spec.
//
// The three gates are fixed, ordered, and independent. Error order and exact
// message text are contractual: the repair fallback routes on them.
package gate

import (
	"github.com/auditkraft/auditkraft/internal/domain"
)

// Gate identifiers, in check order.
const (
	GateClassification = "classification"
	GateSchema         = "schema"
	GatePolicy         = "policy"
)

// BLOCK messages. Consumed verbatim for remediation routing.
const (
	MsgInvalidEvidenceType = "Invalid or missing evidence type classification."
	MsgEmptyInputSchema    = "Input schema is empty. No fields detected for extraction."
	MsgNoOutputMetrics     = "No output metrics defined. Pipeline will produce no results."
)

type check struct {
	id      string
	label   string
	message string
	pass    func(domain.PipelineSpec) bool
}

var checks = []check{
	{
		id:      GateClassification,
		label:   "Evidence Type Classification",
		message: MsgInvalidEvidenceType,
		pass: func(s domain.PipelineSpec) bool {
			return s.EvidenceType != "" && len(s.EvidenceType) > 3
		},
	},
	{
		id:      GateSchema,
		label:   "Input Schema",
		message: MsgEmptyInputSchema,
		pass: func(s domain.PipelineSpec) bool {
			return len(s.InputSchema) >= 1
		},
	},
	{
		id:      GatePolicy,
		label:   "Output Metric Policy",
		message: MsgNoOutputMetrics,
		pass: func(s domain.PipelineSpec) bool {
			return len(s.OutputMetrics) >= 1
		},
	},
}

// Verify runs all gates over the spec. Every gate starts PENDING and ends
// PASS or BLOCK; a BLOCK anywhere makes the report invalid and appends the
// gate's message to Errors in check order.
func Verify(spec domain.PipelineSpec) domain.VerificationReport {
	report := domain.VerificationReport{
		SpecID:  spec.ID,
		Version: spec.Version,
		IsValid: true,
	}

	for _, c := range checks {
		status := domain.GateStatus{ID: c.id, Label: c.label, Status: domain.GatePending}
		if c.pass(spec) {
			status.Status = domain.GatePass
		} else {
			status.Status = domain.GateBlock
			report.IsValid = false
			report.Errors = append(report.Errors, c.message)
		}
		report.Gates = append(report.Gates, status)
	}

	return report
}
