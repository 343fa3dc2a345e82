package assist

// ValidationError reports the first request field that failed schema
// validation. Surfaced to the caller as a client error.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Field + " " + e.Reason
}

// GenerationError marks a provider failure during reply generation.
// Never leaves the service: the orchestrator swaps in the static
// fallback reply instead.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "reply generation failed: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
