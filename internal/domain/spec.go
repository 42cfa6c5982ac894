package domain

import "time"

// PipelineSpec is the versioned processing specification for one evidence
// type. Created at version "1.0.0" by upstream synthesis; mutated only by a
// repair (new version, appended history) or by approval (flag flips true).
// Specs are never deleted, only superseded.
type PipelineSpec struct {
	ID              string         `yaml:"id" json:"id"`
	EvidenceType    string         `yaml:"evidence_type" json:"evidence_type"`
	InputSchema     []SchemaField  `yaml:"input_schema" json:"input_schema"`
	Transformations []string       `yaml:"transformations,omitempty" json:"transformations,omitempty"`
	Calculations    []string       `yaml:"calculations,omitempty" json:"calculations,omitempty"`
	Validations     []string       `yaml:"validations,omitempty" json:"validations,omitempty"`
	OutputMetrics   []string       `yaml:"output_metrics" json:"output_metrics"`
	Version         string         `yaml:"version" json:"version"`
	Approved        bool           `yaml:"approved" json:"approved"`
	RepairHistory   []RepairRecord `yaml:"repair_history,omitempty" json:"repair_history,omitempty"`
}

// SchemaField is one ordered input field the extraction step looks for.
type SchemaField struct {
	Key      string `yaml:"key" json:"key"`
	Type     string `yaml:"type" json:"type"`
	Required bool   `yaml:"required" json:"required"`
}

// RepairRecord is one append-only repair history entry.
type RepairRecord struct {
	ID        string    `yaml:"id,omitempty" json:"id,omitempty"`
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	Error     string    `yaml:"error" json:"error"`
	Fix       string    `yaml:"fix" json:"fix"`
}

// SpecPatch is the fragment a repair provider may rewrite. Identity, version,
// approval and history are never part of a patch.
type SpecPatch struct {
	EvidenceType    string        `json:"evidence_type,omitempty"`
	InputSchema     []SchemaField `json:"input_schema,omitempty"`
	Transformations []string      `json:"transformations,omitempty"`
	Calculations    []string      `json:"calculations,omitempty"`
	Validations     []string      `json:"validations,omitempty"`
	OutputMetrics   []string      `json:"output_metrics,omitempty"`
}

// Clone returns a deep copy so repairs can never partially mutate the input.
func (s PipelineSpec) Clone() PipelineSpec {
	out := s
	out.InputSchema = append([]SchemaField(nil), s.InputSchema...)
	out.Transformations = append([]string(nil), s.Transformations...)
	out.Calculations = append([]string(nil), s.Calculations...)
	out.Validations = append([]string(nil), s.Validations...)
	out.OutputMetrics = append([]string(nil), s.OutputMetrics...)
	out.RepairHistory = append([]RepairRecord(nil), s.RepairHistory...)
	return out
}

// GateState is the status of one guardrail gate.
type GateState string

const (
	GatePending GateState = "PENDING"
	GatePass    GateState = "PASS"
	GateBlock   GateState = "BLOCK"
)

// GateStatus is the outcome of a single named gate. PENDING is the only valid
// initial state; PASS and BLOCK are terminal.
type GateStatus struct {
	ID     string    `json:"id"`
	Label  string    `json:"label"`
	Status GateState `json:"status"`
}

// VerificationReport is the result of running all gates over a spec.
// Errors lists triggered BLOCK messages in gate order; both the order and the
// exact text are contractual, remediation routing matches on them.
type VerificationReport struct {
	SpecID  string       `json:"spec_id"`
	Version string       `json:"version"`
	Gates   []GateStatus `json:"gates"`
	IsValid bool         `json:"is_valid"`
	Errors  []string     `json:"errors,omitempty"`
}
