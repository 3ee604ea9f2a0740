package errors

// ErrorCode is the machine-readable error taxonomy returned alongside
// human-readable messages in API responses.
type ErrorCode int

const (
	ErrorCode_HTTP_OK ErrorCode = 0

	// General
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS   ErrorCode = 1003
	ErrorCode_FORBIDDEN        ErrorCode = 1004

	// Payload / pipeline
	ErrorCode_INVALID_PAYLOAD    ErrorCode = 2000
	ErrorCode_MISSING_AUDIO_DATA ErrorCode = 2001
	ErrorCode_PROCESSING_FAILED  ErrorCode = 2002

	// Providers
	ErrorCode_AI_TRANSCRIPTION_FAILED ErrorCode = 3000
	ErrorCode_AI_SUMMARY_FAILED       ErrorCode = 3001

	// Infrastructure
	ErrorCode_DB_QUERY_FAILED                 ErrorCode = 4000
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 4001
	ErrorCode_INTEGRATION_CACHE_FAILED        ErrorCode = 4002
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 4003
	ErrorCode_NOTIFICATION_FAILED             ErrorCode = 4004

	// Reports
	ErrorCode_REPORT_EXPORT_FAILED ErrorCode = 5000
)

// String returns the symbolic name of the code.
func (c ErrorCode) String() string {
	switch c {
	case ErrorCode_HTTP_OK:
		return "OK"
	case ErrorCode_INTERNAL:
		return "INTERNAL"
	case ErrorCode_INVALID_ARGUMENT:
		return "INVALID_ARGUMENT"
	case ErrorCode_NOT_FOUND:
		return "NOT_FOUND"
	case ErrorCode_ALREADY_EXISTS:
		return "ALREADY_EXISTS"
	case ErrorCode_FORBIDDEN:
		return "FORBIDDEN"
	case ErrorCode_INVALID_PAYLOAD:
		return "INVALID_PAYLOAD"
	case ErrorCode_MISSING_AUDIO_DATA:
		return "MISSING_AUDIO_DATA"
	case ErrorCode_PROCESSING_FAILED:
		return "PROCESSING_FAILED"
	case ErrorCode_AI_TRANSCRIPTION_FAILED:
		return "AI_TRANSCRIPTION_FAILED"
	case ErrorCode_AI_SUMMARY_FAILED:
		return "AI_SUMMARY_FAILED"
	case ErrorCode_DB_QUERY_FAILED:
		return "DB_QUERY_FAILED"
	case ErrorCode_INTEGRATION_STORAGE_FAILED:
		return "INTEGRATION_STORAGE_FAILED"
	case ErrorCode_INTEGRATION_CACHE_FAILED:
		return "INTEGRATION_CACHE_FAILED"
	case ErrorCode_INTEGRATION_EXTERNAL_API_FAILED:
		return "INTEGRATION_EXTERNAL_API_FAILED"
	case ErrorCode_NOTIFICATION_FAILED:
		return "NOTIFICATION_FAILED"
	case ErrorCode_REPORT_EXPORT_FAILED:
		return "REPORT_EXPORT_FAILED"
	default:
		return "UNKNOWN"
	}
}
