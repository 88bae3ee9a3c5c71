package errors

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common error codes.
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeValidation     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_003"
	ErrCodeSerialization  ErrorCode = "COMMON_004"
	ErrCodeNotImplemented ErrorCode = "COMMON_005"
)

// Engine error codes. The classification and parsing paths are total
// functions and never return these; they cover construction-time failures.
const (
	ErrCodePatternCompile   ErrorCode = "ENGINE_001"
	ErrCodeUnknownCategory  ErrorCode = "ENGINE_002"
	ErrCodeEscalationFailed ErrorCode = "ENGINE_003"
)

// Configuration error codes.
const (
	ErrCodeConfigRead     ErrorCode = "CONFIG_001"
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_002"
)

// CLI error codes.
const (
	ErrCodeCLIUsage     ErrorCode = "CLI_001"
	ErrCodeCLIBadInput  ErrorCode = "CLI_002"
	ErrCodeCLIBadOutput ErrorCode = "CLI_003"
)

// codeMessages maps each code to its default human-readable summary, used
// when a factory is called with an empty message.
var codeMessages = map[ErrorCode]string{
	ErrCodeInternal:         "internal error",
	ErrCodeValidation:       "validation failed",
	ErrCodeNotFound:         "not found",
	ErrCodeSerialization:    "serialization failed",
	ErrCodeNotImplemented:   "not implemented",
	ErrCodePatternCompile:   "pattern compilation failed",
	ErrCodeUnknownCategory:  "unknown pattern category",
	ErrCodeEscalationFailed: "escalation classifier failed",
	ErrCodeConfigRead:       "failed to read configuration",
	ErrCodeConfigInvalid:    "invalid configuration",
	ErrCodeCLIUsage:         "invalid command usage",
	ErrCodeCLIBadInput:      "invalid input",
	ErrCodeCLIBadOutput:     "failed to write output",
}

// DefaultMessage returns the default message for a code, or "unknown error"
// for unregistered codes.
func DefaultMessage(code ErrorCode) string {
	if msg, ok := codeMessages[code]; ok {
		return msg
	}
	return "unknown error"
}
