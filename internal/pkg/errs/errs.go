package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

// New creates an error with a captured stack trace.
func New(msg string) error {
	return cr.New(msg)
}

// Wrap annotates err with msg, preserving the original chain. Returns nil for
// a nil err so callers can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an errors.Is target without changing the message.
// Used to tag infra errors with domain sentinels at the usecase boundary.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// ExtractStackLines renders the verbose form of err and returns up to
// maxLines lines of it, for structured log fields. maxLines <= 0 means no
// limit.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
