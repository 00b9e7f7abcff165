package crawler

import "fmt"

// AuthError aborts the whole run: nothing downstream is meaningful
// without an authenticated session.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string { return fmt.Sprintf("login failed: %v", e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// ExtractionError covers a single job; the run continues past it.
type ExtractionError struct {
	JobID string
	Err   error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extracting job %s: %v", e.JobID, e.Err)
}
func (e *ExtractionError) Unwrap() error { return e.Err }

// PersistenceError means the batch save failed and was rolled back.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string { return fmt.Sprintf("saving results: %v", e.Err) }
func (e *PersistenceError) Unwrap() error { return e.Err }
