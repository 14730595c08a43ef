package request

// ValidationError signals that the submission failed the form-level checks
// before any write was attempted.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// IsValidationError reports whether err is a form validation failure.
func IsValidationError(err error) bool {
	_, ok := err.(ValidationError)
	return ok
}
