package question

// Recovery tells the I/O layer what to do after a failed evaluation.
type Recovery int

const (
	// Abort returns the failure to the caller.
	Abort Recovery = iota
	// Retry asks the question again.
	Retry
)

func (r Recovery) String() string {
	if r == Retry {
		return "retry"
	}
	return "abort"
}

// ErrorAction decides how to recover from a failed evaluation.
type ErrorAction func(err error) Recovery

// RetryOnError re-prompts on user-input failures and aborts on anything else.
func RetryOnError(err error) Recovery {
	switch KindOf(err) {
	case KindMissingValue, KindOutOfRange, KindValidation, KindConversion:
		return Retry
	default:
		return Abort
	}
}

// AbortOnError always aborts.
func AbortOnError(error) Recovery {
	return Abort
}
