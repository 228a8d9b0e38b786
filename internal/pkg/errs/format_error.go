package errs

import "errors"

// FormatError reports text that could not be parsed. Probe names the check
// that failed; Input carries the offending text for diagnostics.
type FormatError struct {
	Probe string
	Input string
	Err   error
}

func NewFormatError(probe, input string, cause error) *FormatError {
	return &FormatError{Probe: probe, Input: input, Err: cause}
}

func (e *FormatError) Error() string {
	msg := e.Probe
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Input != "" {
		msg += ":\n\n" + e.Input
	}
	return msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func (e *FormatError) Is(target error) bool {
	return target == ErrMalformedInput
}

func IsFormatError(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}
