package apperr

// ValidationError is a caller error detected before Elasticsearch is queried.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// InternalError is an upstream or mapping failure. Message is safe to show
// to API callers; Err carries the diagnostic detail and is only logged.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func NewInternal(msg string) *InternalError {
	return &InternalError{Message: msg}
}

func NewInternalWrap(msg string, err error) *InternalError {
	return &InternalError{Message: msg, Err: err}
}
