package convert

// InvalidInputError rejects a request before any conversion work happens:
// missing fields, disallowed extensions, MIME types or formats. The reason
// is user-actionable and goes to the client verbatim.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return e.Reason }

// ConversionError reports a failed engine, codec or process run. The client
// sees a generic message; Detail carries the diagnostic text for the
// response's optional details field.
type ConversionError struct {
	Detail string
	Err    error
}

func (e *ConversionError) Error() string {
	if e.Detail != "" {
		return "conversion failed: " + e.Detail
	}
	return "conversion failed"
}

func (e *ConversionError) Unwrap() error { return e.Err }

func invalidInput(reason string) error {
	return &InvalidInputError{Reason: reason}
}

func conversionFailed(err error) error {
	return &ConversionError{Detail: err.Error(), Err: err}
}
