package errors

import (
	"io"
)

// Report writes err as a JSON error line to w and returns the exit code the
// process should terminate with.
func Report(w io.Writer, err error) int {
	appErr := AsAppError(err)
	data := append(appErr.ToJSON(), '\n')
	if _, werr := w.Write(data); werr != nil {
		return ExitInternal
	}
	return appErr.ExitCode
}
