// Package severity provides severity level constants for issues reported
// by the converter package.
//
// All three severity levels are re-exported by the public converter package:
//   - SeverityInfo: Informational messages about choices made
//   - SeverityWarning: Lossy conversions where a representative value was kept
//   - SeverityCritical: Features that cannot be converted (data loss)
//
// The severity levels are ordered from least to most severe:
// Info < Warning < Critical
package severity

// Severity indicates the severity level of an issue found during conversion.
type Severity int

const (
	// SeverityInfo indicates informational messages about conversion choices.
	// These are non-actionable notices that may be useful for debugging.
	SeverityInfo Severity = iota

	// SeverityWarning indicates lossy conversions where a deterministic
	// policy kept a representative value and discarded the rest.
	SeverityWarning

	// SeverityCritical indicates features that cannot be converted at all.
	// The conversion still completes, but the output lost functionality.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}
