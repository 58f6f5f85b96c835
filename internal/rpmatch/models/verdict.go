package models

// Verdict type is used to describe the outcome of a response classification.
type Verdict int

const (
	Affirmative Verdict = iota
	Negative
	Unrecognized
)

// ExitCodeUsageError is the exit status for bad or missing arguments.
const ExitCodeUsageError = 3

func (v Verdict) String() string {
	switch v {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	default:
		return "unrecognized"
	}
}

// ExitCode returns process exit status for verdict.
func (v Verdict) ExitCode() int {
	switch v {
	case Affirmative:
		return 0
	case Negative:
		return 1
	default:
		return 2
	}
}
