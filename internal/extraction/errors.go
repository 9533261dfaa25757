package extraction

import (
	"fmt"
	"strings"
)

// NoPayloadFound indicates that no plausible JSON fragment of the
// expected shape was located anywhere in the completion.
type NoPayloadFound struct {
	Shape  Shape
	Prefix string // bounded prefix of the raw completion, for diagnostics
}

func (e *NoPayloadFound) Error() string {
	return fmt.Sprintf("no %s payload found in completion (prefix: %q)", e.Shape, e.Prefix)
}

// MalformedJSON indicates that a located fragment failed strict JSON
// decoding. The offending fragment is retained so operators can see what
// the model actually produced.
type MalformedJSON struct {
	Shape    Shape
	Fragment string
	Cause    error
}

func (e *MalformedJSON) Error() string {
	return fmt.Sprintf("malformed %s JSON: %v (fragment: %q)", e.Shape, e.Cause, e.Fragment)
}

func (e *MalformedJSON) Unwrap() error {
	return e.Cause
}

// SchemaMismatch indicates that syntactically valid JSON violated the
// expected shape, such as a missing field or a wrong element type.
type SchemaMismatch struct {
	Shape      Shape
	Violations []string
}

func (e *SchemaMismatch) Error() string {
	return fmt.Sprintf("%s payload violates schema: %s", e.Shape, strings.Join(e.Violations, "; "))
}
