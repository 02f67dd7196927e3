package model

import "fmt"

// Severity classifies a diagnostic. Warnings are reported but never affect
// the run's exit status; errors do.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is a single validation finding. Manifest is the identifier of
// the manifest the finding is about (empty when the finding is scoped to a
// whole file rather than one manifest). Field is an optional field path such
// as "input.state_a.type".
type Diagnostic struct {
	Severity Severity
	Manifest string
	Field    string
	Message  string
}

// Errorf builds an error-severity diagnostic.
func Errorf(manifest, field, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityError,
		Manifest: manifest,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Warnf builds a warning-severity diagnostic.
func Warnf(manifest, field, format string, args ...any) Diagnostic {
	return Diagnostic{
		Severity: SeverityWarning,
		Manifest: manifest,
		Field:    field,
		Message:  fmt.Sprintf(format, args...),
	}
}

// HasErrors reports whether any diagnostic in the slice is error-severity.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
