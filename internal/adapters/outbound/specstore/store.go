package specstore

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/auditkraft/auditkraft/internal/domain"
)

// schemaJSON is the structural contract for stored spec documents. It checks
// shape only; semantic guardrails (empty schema, missing metrics) stay with
// the gate verifier so a structurally valid but incomplete spec can still be
// loaded, verified, and repaired.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "version"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "evidence_type": {"type": "string"},
    "input_schema": {
      "type": ["array", "null"],
      "items": {
        "type": "object",
        "required": ["key", "type"],
        "properties": {
          "key": {"type": "string", "minLength": 1},
          "type": {"type": "string"},
          "required": {"type": "boolean"}
        }
      }
    },
    "transformations": {"type": ["array", "null"], "items": {"type": "string"}},
    "calculations": {"type": ["array", "null"], "items": {"type": "string"}},
    "validations": {"type": ["array", "null"], "items": {"type": "string"}},
    "output_metrics": {"type": ["array", "null"], "items": {"type": "string"}},
    "version": {"type": "string", "pattern": "^[0-9]+(\\.[0-9]+){0,2}$"},
    "approved": {"type": "boolean"},
    "repair_history": {"type": ["array", "null"]}
  }
}`

// Store implements domain.SpecStore over YAML documents on disk, validating
// every loaded document against the embedded JSON Schema.
type Store struct {
	schema *jsonschema.Schema
}

func New() (*Store, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("pipeline_spec.schema.json", strings.NewReader(schemaJSON)); err != nil {
		return nil, fmt.Errorf("adding spec schema: %w", err)
	}
	schema, err := compiler.Compile("pipeline_spec.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compiling spec schema: %w", err)
	}
	return &Store{schema: schema}, nil
}

// Load reads a spec document and validates its structure.
func (s *Store) Load(path string) (domain.PipelineSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.PipelineSpec{}, fmt.Errorf("reading spec: %w", err)
	}

	var spec domain.PipelineSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return domain.PipelineSpec{}, fmt.Errorf("parsing spec %s: %w", path, err)
	}

	if err := s.validate(spec); err != nil {
		return domain.PipelineSpec{}, fmt.Errorf("spec %s: %w", path, err)
	}

	return spec, nil
}

// Save writes a spec document. The caller owns versioning; Save never touches
// the spec's fields.
func (s *Store) Save(path string, spec domain.PipelineSpec) error {
	if err := s.validate(spec); err != nil {
		return err
	}
	data, err := yaml.Marshal(spec)
	if err != nil {
		return fmt.Errorf("encoding spec: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// validate checks the normalized document against the JSON Schema. The spec
// is round-tripped through JSON so the validator sees the same shapes a JSON
// decoder would produce.
func (s *Store) validate(spec domain.PipelineSpec) error {
	raw, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("normalizing spec: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("normalizing spec: %w", err)
	}
	if err := s.schema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}
