package ops

import "fmt"

// ValidationError indicates an item field failed validation.
type ValidationError struct {
	Field   string // "name", "quantity", or "category"
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// SelectionError indicates an edit or remove was requested without a valid
// item selected.
type SelectionError struct {
	Action   string // "edit" or "remove"
	Position int    // 1-based position requested, NoSelection if none
	Len      int    // list length at the time of the request
}

func (e *SelectionError) Error() string {
	if e.Position == NoSelection {
		return fmt.Sprintf("Please select an item to %s.", e.Action)
	}
	return fmt.Sprintf("item %d not found (list has %d items)", e.Position, e.Len)
}

// PersistError wraps a failure reading or writing the list file.
type PersistError struct {
	Op  string // "load" or "save"
	Err error
}

func (e *PersistError) Error() string {
	verb := "saving"
	if e.Op == "load" {
		verb = "loading"
	}
	return fmt.Sprintf("Error %s data: %v", verb, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}
