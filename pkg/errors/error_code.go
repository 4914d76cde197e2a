package errors

// ErrorCode represents a unique error code for identifying different error types.
type ErrorCode int

const (
	// General errors (1-99)
	ErrCodeUnknown ErrorCode = 1

	// Validation errors (100-199)
	ErrCodeInvalidParameter     ErrorCode = 100
	ErrCodeInvalidConfiguration ErrorCode = 101
	ErrCodeInvalidDateRange     ErrorCode = 102
	ErrCodeInvalidWindow        ErrorCode = 103

	// Data errors (200-299)
	ErrCodeTickerNotFound ErrorCode = 200
	ErrCodeEmptySeries    ErrorCode = 201

	// Provider errors (300-399)
	ErrCodeProviderFailed      ErrorCode = 300
	ErrCodeProviderParseFailed ErrorCode = 301
)
