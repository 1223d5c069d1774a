package bind

import (
	"fmt"
	"strings"
)

// Code classifies a diagnostic.
type Code string

const (
	CodeUnknownField         Code = "unknown_field"
	CodeUnknownColumn        Code = "unknown_column"
	CodeAmbiguousColumn      Code = "ambiguous_column"
	CodeUnsupportedOperation Code = "unsupported_operation"
	CodeOperationFailure     Code = "operation_failure"
	CodeCoercionMismatch     Code = "coercion_mismatch"
)

// Severity of a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota
	SeveritySevere
)

func (s Severity) String() string {
	if s == SeveritySevere {
		return "severe"
	}
	return "warning"
}

// Diagnostic records a non-fatal problem met while binding.
type Diagnostic struct {
	Code      Code
	Severity  Severity
	Path      string
	Label     string
	Operation string
	Args      []any
	Err       error
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", d.Code, d.Path)
	if d.Label != "" {
		fmt.Fprintf(&b, " label=%s", d.Label)
	}
	if d.Operation != "" {
		fmt.Fprintf(&b, " operation=%s%v", d.Operation, d.Args)
	}
	if d.Err != nil {
		fmt.Fprintf(&b, ": %v", d.Err)
	}
	return b.String()
}

// Diagnostics is the ordered list of diagnostics of a session.
type Diagnostics []Diagnostic

// Count returns the number of diagnostics with code.
func (ds Diagnostics) Count(code Code) int {
	n := 0
	for _, d := range ds {
		if d.Code == code {
			n++
		}
	}
	return n
}

// Severe returns the severe diagnostics.
func (ds Diagnostics) Severe() Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Severity == SeveritySevere {
			out = append(out, d)
		}
	}
	return out
}

// ForPath returns the diagnostics recorded against path.
func (ds Diagnostics) ForPath(path string) Diagnostics {
	var out Diagnostics
	for _, d := range ds {
		if d.Path == path {
			out = append(out, d)
		}
	}
	return out
}
