package slides

import "fmt"

// ConversionError reports a failed deck/PDF/image conversion, carrying an
// install hint so the caller can show remediation instead of a bare exit
// status.
type ConversionError struct {
	Tool string
	Hint string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s conversion failed: %v (hint: %s)", e.Tool, e.Err, e.Hint)
}

func (e *ConversionError) Unwrap() error { return e.Err }
