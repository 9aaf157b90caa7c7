package apperror

import "net/http"

// AppError carries an HTTP status, a stable machine-readable kind for API
// clients, a human-readable message, and the underlying cause. The cause is
// never serialized; handlers decide whether diagnostics are exposed.
type AppError struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail returns the wrapped cause as text for the structured-response path,
// or empty when there is nothing beyond the message.
func (e *AppError) Detail() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func New(code int, kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func BadRequest(kind, message string) *AppError {
	return New(http.StatusBadRequest, kind, message, nil)
}

func BadGateway(kind, message string, err error) *AppError {
	return New(http.StatusBadGateway, kind, message, err)
}

func Internal(kind string, err error) *AppError {
	return New(http.StatusInternalServerError, kind, "Internal Server Error", err)
}
