package term

import "fmt"

type WizardError struct {
	Code    string
	Message string
}

func (e *WizardError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSessionNotFound means the wizard session expired or never existed.
	ErrSessionNotFound = &WizardError{Code: "sessionNotFound", Message: "term booking session not found or expired"}
	// ErrWrongSelectionCount means the week-one selection does not match the
	// plan's sessions-per-week requirement.
	ErrWrongSelectionCount = &WizardError{Code: "wrongSelectionCount", Message: "week one selection must match the plan's sessions per week"}
	// ErrUnresolvedConflicts blocks checkout while any week still has open
	// conflicts.
	ErrUnresolvedConflicts = &WizardError{Code: "unresolvedConflicts", Message: "resolve all schedule conflicts before checkout"}
	// ErrPatternNotExtracted means checkout or conflict resolution was
	// attempted before the week-one step completed.
	ErrPatternNotExtracted = &WizardError{Code: "patternNotExtracted", Message: "select week one sessions first"}
	// ErrInvalidWeek means the referenced week index does not exist.
	ErrInvalidWeek = &WizardError{Code: "invalidWeek", Message: "week index out of range"}
)
