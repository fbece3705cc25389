package cli

import (
	"errors"

	"github.com/jacksmith/shoplist/internal/ops"
)

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output, and adds a
// hint line for errors the user can act on.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	msg := "error: " + err.Error()
	if h := hint(err); h != "" {
		msg += "\n" + h
	}
	return msg
}

func hint(err error) string {
	var selErr *ops.SelectionError
	if errors.As(err, &selErr) {
		return "Run 'shop list' to see item positions."
	}

	var persistErr *ops.PersistError
	if errors.As(err, &persistErr) && persistErr.Op == "load" {
		return "Run 'shop validate' or fix the data file by hand."
	}

	return ""
}
