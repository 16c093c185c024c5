package entities

// ProcessorError is the structured failure returned by payment processor
// operations: a short message, an optional machine code and a diagnostic
// detail taken from the cause.
type ProcessorError struct {
	Message string `json:"error"`
	Code    string `json:"code,omitempty"`
	Detail  string `json:"detail,omitempty"`
	Err     error  `json:"-"`
}

func (e *ProcessorError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return e.Message + ": " + e.Detail
}

func (e *ProcessorError) Unwrap() error { return e.Err }
