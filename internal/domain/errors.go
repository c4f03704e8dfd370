package domain

import "fmt"

// InputError reports an unreadable or missing input at the CLI boundary.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string { return fmt.Sprintf("input %s: %v", e.Path, e.Err) }

func (e *InputError) Unwrap() error { return e.Err }

// FormatError reports a transcript whose structure cannot be reconciled:
// malformed or out-of-order tags, an absent parity line, or a positional
// gap that cannot be explained as a single missing-line correction.
type FormatError struct {
	Line   int // 1-based transcript line number, 0 when positionless
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line == 0 {
		return "format: " + e.Reason
	}
	return fmt.Sprintf("format: line %d: %s", e.Line, e.Reason)
}

// CorruptionError reports a group with unrecoverable damage: two or more
// bad data lines, or one bad data line alongside a bad parity line.
type CorruptionError struct {
	Group   int
	BadData []int // 1-based global indices of the damaged data lines
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("group %d unrecoverable: %d damaged data lines %v", e.Group, len(e.BadData), e.BadData)
}
