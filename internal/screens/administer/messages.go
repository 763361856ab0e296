package administer

import "github.com/clinicli/scl90/internal/results"

// recordSavedMsg is sent when the completed administration has been
// scored and written to the store.
type recordSavedMsg struct {
	Record *results.Record
	Err    error
}
