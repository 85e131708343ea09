package ingest

// ValidationError marks failures caused by the uploaded file itself
// (bad extension, missing columns, no usable rows). Handlers report
// these as HTTP 400; anything else is a server-side failure.
type ValidationError struct {
	msg string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

func (e *ValidationError) Error() string {
	return e.msg
}
