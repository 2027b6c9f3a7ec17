package errors

import (
	"fmt"
	"net/http"
)

// Stable machine-readable error codes returned in the error_code field.
const (
	CodeInvalidURL       = "E001"
	CodeNoTranscript     = "E002" // surfaced as a warning, never as an error
	CodeVideoUnavailable = "E003"
	CodeGeminiAPIError   = "E004"
	CodeNetworkError     = "E005"
	CodeMetadataError    = "E006"
	CodeGeneralError     = "E999"
)

type AppError struct {
	Code      int    `json:"-"` // HTTP status
	ErrorCode string `json:"error_code"`
	ErrorType string `json:"error_type"`
	Message   string `json:"error"`
	Op        string `json:"-"`
	Err       error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Details returns the underlying error description for the details field,
// or "" when there is nothing beyond the user-facing message.
func (e *AppError) Details() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

func InvalidURL(op string, err error) *AppError {
	return &AppError{
		Code:      http.StatusBadRequest,
		ErrorCode: CodeInvalidURL,
		ErrorType: "invalid_url",
		Message:   "Invalid YouTube URL",
		Op:        op,
		Err:       err,
	}
}

func VideoUnavailable(op string, err error) *AppError {
	return &AppError{
		Code:      http.StatusBadRequest,
		ErrorCode: CodeVideoUnavailable,
		ErrorType: "video_unavailable",
		Message:   "The video is unavailable or restricted",
		Op:        op,
		Err:       err,
	}
}

func GeminiAPI(op string, err error, message string) *AppError {
	return &AppError{
		Code:      http.StatusInternalServerError,
		ErrorCode: CodeGeminiAPIError,
		ErrorType: "gemini_api_error",
		Message:   message,
		Op:        op,
		Err:       err,
	}
}

func Network(op string, err error) *AppError {
	return &AppError{
		Code:      http.StatusInternalServerError,
		ErrorCode: CodeNetworkError,
		ErrorType: "network_error",
		Message:   "Network error while contacting the video page",
		Op:        op,
		Err:       err,
	}
}

func MetadataExtraction(op string, err error) *AppError {
	return &AppError{
		Code:      http.StatusInternalServerError,
		ErrorCode: CodeMetadataError,
		ErrorType: "metadata_extraction_error",
		Message:   "Failed to extract video metadata",
		Op:        op,
		Err:       err,
	}
}

func General(op string, err error) *AppError {
	return &AppError{
		Code:      http.StatusInternalServerError,
		ErrorCode: CodeGeneralError,
		ErrorType: "general_error",
		Message:   "An unexpected error occurred",
		Op:        op,
		Err:       err,
	}
}

// FromError passes through an existing *AppError and wraps anything else
// as a general error, so every failure path produces a classified response.
func FromError(op string, err error) *AppError {
	if appErr, ok := err.(*AppError); ok {
		return appErr
	}
	return General(op, err)
}
