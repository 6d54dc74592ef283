package reminder

import "fmt"

// ValidationError reports a rejected mutation of a reminder field. The
// reminder keeps its prior state when one of these is returned.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// IndexError reports a 1-based position outside [1, size].
type IndexError struct {
	Position int
	Size     int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("position %d out of range for %d reminders", e.Position, e.Size)
}
