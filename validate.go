package geneticsqa

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Schema is the structural contract a parsed record must satisfy before it
// may enter an output partition. Validation is purely structural; judging
// biological correctness belongs to the review and defense passes.
type Schema struct {
	Name       string
	NumOptions int

	// Exactly one of these is set: legacy records explain themselves with
	// step-by-step thinking, current records with brief reasoning.
	RequireThinking  bool
	RequireReasoning bool

	// When set, records whose confidence is not "high" are rejected.
	RequireHighConfidence bool

	// When set, the driver keeps a failure partition; otherwise failed
	// items are dropped outright.
	KeepFailures bool
}

var (
	// LegacySchema matches the original 8-option generation format.
	LegacySchema = Schema{
		Name:            "legacy",
		NumOptions:      8,
		RequireThinking: true,
	}

	// CurrentSchema matches the 10-option MMLU-Pro style format with a
	// confidence gate and a failure partition.
	CurrentSchema = Schema{
		Name:                  "current",
		NumOptions:            10,
		RequireReasoning:      true,
		RequireHighConfidence: true,
		KeepFailures:          true,
	}
)

// SchemaByName resolves a variant name from the command line.
func SchemaByName(name string) (Schema, error) {
	switch name {
	case LegacySchema.Name:
		return LegacySchema, nil
	case CurrentSchema.Name:
		return CurrentSchema, nil
	default:
		return Schema{}, fmt.Errorf("unknown schema variant: %q", name)
	}
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report violations under JSON field names, matching the record format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a parsed question against the schema contract. A record
// that comes back is safe to emit: its required fields are present, its
// option count matches the variant, and its correct answer letter is a key
// of its own options map.
func (s Schema) Validate(q *Question) error {
	if err := structValidator.Struct(q); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return &SchemaError{Reason: fmt.Sprintf("missing required field %q", verrs[0].Field())}
		}
		return &SchemaError{Reason: err.Error()}
	}

	if s.RequireThinking && q.Thinking == "" {
		return &SchemaError{Reason: `missing required field "thinking"`}
	}
	if s.RequireReasoning && q.Reasoning == "" {
		return &SchemaError{Reason: `missing required field "reasoning"`}
	}
	if s.RequireHighConfidence && q.Confidence == "" {
		return &SchemaError{Reason: `missing required field "confidence"`}
	}

	if len(q.Options) != s.NumOptions {
		return &SchemaError{Reason: fmt.Sprintf("wrong number of options: %d (want %d)", len(q.Options), s.NumOptions)}
	}

	if _, ok := q.Options[q.CorrectAnswer]; !ok {
		return &SchemaError{Reason: fmt.Sprintf("correct answer %q is not an option letter", q.CorrectAnswer)}
	}

	if s.RequireHighConfidence && !strings.EqualFold(q.Confidence, "high") {
		return &SchemaError{Reason: fmt.Sprintf("confidence %q fails the high-confidence gate", q.Confidence)}
	}

	return nil
}
