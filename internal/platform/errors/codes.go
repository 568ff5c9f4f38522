// Package errors provides structured errors for data loading.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Data access errors
	CodeMalformedData Code = "DATA_MALFORMED"
	CodeMissingField  Code = "DATA_MISSING_FIELD"
	CodeInvalidField  Code = "DATA_INVALID_FIELD"

	// Registry errors
	CodeInvalidID Code = "REGISTRY_INVALID_ID"

	// Distribution errors
	CodeDistributionInvalid          Code = "DISTRIBUTION_INVALID"
	CodeDistributionInvalidParameter Code = "DISTRIBUTION_INVALID_PARAMETER"

	// Legacy id errors
	CodeLegacyIDOutOfRange Code = "LEGACY_ID_OUT_OF_RANGE"
	CodeLegacyIDMissing    Code = "LEGACY_ID_MISSING"
)

// Fatal reports whether errors with this code abort the load of a data unit.
// Non-fatal codes are reported and replaced with a safe default.
func (c Code) Fatal() bool {
	switch c {
	case CodeDistributionInvalidParameter, CodeLegacyIDOutOfRange, CodeLegacyIDMissing:
		return false
	default:
		return true
	}
}
