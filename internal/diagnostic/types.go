package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"enumrepr/internal/common"
)

// Diagnostic codes.
const (
	CodeDuplicateDiscriminant = "duplicate-discriminant"
	CodeDuplicateTarget       = "duplicate-target"
	CodeTargetOverflow        = "target-overflow"
	CodeNoVariants            = "no-variants"
	CodeMethodCollision       = "method-collision"
	CodeInvalidEnum           = "invalid-enum"
)

// Diagnostics holds all diagnostics of a generation run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Enum is the enum type this relates to (if any).
	Enum string
	// Variant is the constant this relates to (if any).
	Variant string
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(sev Severity, code, message, enum, variant string) {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Enum:     enum,
		Variant:  variant,
	}

	switch sev {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, enum, variant string) {
	d.add(SeverityError, code, message, enum, variant)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, enum, variant string) {
	d.add(SeverityWarning, code, message, enum, variant)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, enum, variant string) {
	d.add(SeverityInfo, code, message, enum, variant)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil.
func (d *Diagnostics) Error() error {
	if !d.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(d.Errors))
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// Log writes every diagnostic to log at the level matching its severity.
func (d *Diagnostics) Log(log logrus.FieldLogger) {
	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			entry := log.WithField("code", diag.Code)
			if diag.Enum != "" {
				entry = entry.WithField("enum", diag.Enum)
			}
			if diag.Variant != "" {
				entry = entry.WithField("variant", diag.Variant)
			}

			switch diag.Severity {
			case SeverityError:
				entry.Error(diag.Message)
			case SeverityWarning:
				entry.Warn(diag.Message)
			default:
				entry.Info(diag.Message)
			}
		}
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Enum != "" {
		prefix = append(prefix, "["+d.Enum+"]")
	}

	if d.Variant != "" {
		prefix = append(prefix, d.Variant)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
