package project

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.yaml.in/yaml/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/project.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/name", "/platforms/0/alias")
	Message string // Human-readable error message
	Keyword string // Schema keyword location that failed
}

func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Err returns nil for a valid result, otherwise an error wrapping
// ErrInvalid that lists every issue.
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	msgs := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("project.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("project.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Validate checks project YAML against the embedded schema. Schema
// violations are reported in the result; the error return is reserved for
// unparseable input or a broken schema.
func Validate(data []byte) (*ValidationResult, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		return invalid(ValidationIssue{Message: "project file is empty"}), nil
	}

	// The validator wants JSON-shaped values (json.Number, map[string]any).
	encoded, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("converting to JSON: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("preparing JSON for validation: %w", err)
	}

	var ve *jsonschema.ValidationError
	switch err := schema.Validate(inst); {
	case err == nil:
		return &ValidationResult{Valid: true}, nil
	case errors.As(err, &ve):
		issues := leafIssues(ve, nil)
		if len(issues) == 0 {
			issues = []ValidationIssue{{Message: ve.Error()}}
		}
		return invalid(issues...), nil
	default:
		return nil, fmt.Errorf("validating: %w", err)
	}
}

// ValidateFile reads a file and validates it against the project schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Validate(data)
}

func invalid(issues ...ValidationIssue) *ValidationResult {
	return &ValidationResult{Issues: issues}
}

// leafIssues appends one issue per distinct leaf of the error tree.
// Wrapper keywords (allOf, $ref) carry no detail of their own and are
// skipped.
func leafIssues(ve *jsonschema.ValidationError, out []ValidationIssue) []ValidationIssue {
	for _, cause := range ve.Causes {
		out = leafIssues(cause, out)
	}
	if len(ve.Causes) > 0 || ve.ErrorKind == nil {
		return out
	}

	kw := ve.ErrorKind.KeywordPath()
	if len(kw) == 0 || kw[len(kw)-1] == "allOf" || kw[len(kw)-1] == "$ref" {
		return out
	}
	issue := ValidationIssue{
		Message: ve.ErrorKind.LocalizedString(printer),
		Keyword: kw[len(kw)-1],
	}
	if len(ve.InstanceLocation) > 0 {
		issue.Path = "/" + strings.Join(ve.InstanceLocation, "/")
	}
	if slices.Contains(out, issue) {
		return out
	}
	return append(out, issue)
}
