package apperr

// ValidationError is a client mistake, reported as 400 Bad Request.
// Code is a stable machine-readable reason such as "invalid_token".
type ValidationError struct {
	Message string
	Code    string
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

func (e *ValidationError) WithCode(code string) *ValidationError {
	e.Code = code
	return e
}
