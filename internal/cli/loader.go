package cli

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/sree181/SMJ-sub004/internal/aggregate"
)

//go:embed schema.cue
var schemaCUE string

// Loader error codes.
const (
	ErrCodeNotFound      = "E_NOT_FOUND"
	ErrCodeParseError    = "E_PARSE"
	ErrCodeSchemaError   = "E_SCHEMA"
	ErrCodeEmptyDocument = "E_EMPTY"
)

// LoadError represents an error that occurred during observation loading.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

// observationFile is the decoded shape of an observation YAML document.
type observationFile struct {
	Observations []aggregate.Observation `yaml:"observations"`
}

// LoadObservations reads a YAML observation file, validates it against the
// embedded CUE schema, and returns the decoded observations.
//
// Validation happens on the generic document before typed decoding, so a
// file with a wrong field type fails with a schema error rather than a
// half-decoded struct.
func LoadObservations(path string) ([]aggregate.Observation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: err.Error()}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &LoadError{Code: ErrCodeParseError, Path: path, Message: err.Error()}
	}
	if doc == nil {
		return nil, &LoadError{Code: ErrCodeEmptyDocument, Path: path, Message: "document is empty"}
	}

	if err := validateDocument(doc); err != nil {
		return nil, &LoadError{Code: ErrCodeSchemaError, Path: path, Message: err.Error()}
	}

	var file observationFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &LoadError{Code: ErrCodeParseError, Path: path, Message: err.Error()}
	}

	return file.Observations, nil
}

// validateDocument unifies the decoded document with the embedded schema.
// Observation fields are closed by the schema's definition, so unknown or
// mistyped fields are rejected here.
func validateDocument(doc any) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	value := ctx.Encode(doc)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	return nil
}
