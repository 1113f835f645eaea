package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeLoadFailed    = "LOAD_FAILED"
	CodeNoDataset     = "NO_DATASET"
	CodeUnknownColumn = "UNKNOWN_COLUMN"
	CodeCleanFailed   = "CLEAN_FAILED"
	CodeChartInvalid  = "CHART_INVALID"
	CodeExportFailed  = "EXPORT_FAILED"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func LoadFailed(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeLoadFailed,
		Message: message,
		Cause:   cause,
	}
}

func NoDataset() *AppError {
	return New(CodeNoDataset, "no dataset loaded")
}

func UnknownColumn(name string) *AppError {
	return New(CodeUnknownColumn, fmt.Sprintf("column %q not found", name))
}

func ChartInvalid(message string) *AppError {
	return New(CodeChartInvalid, message)
}

func ExportFailed(cause error) *AppError {
	return &AppError{
		Code:    CodeExportFailed,
		Message: "export failed",
		Cause:   cause,
	}
}
