package provision

import (
	"errors"
	"fmt"
)

// ErrAborted marks a declined confirmation. It is a clean exit, not
// a failure; main maps it to exit code 0.
var ErrAborted = errors.New("aborted by operator")

// ValidationError is a failed pre-condition: bad input, an account
// in the wrong existence state, a missing config file or shell. No
// mutation has happened when one is returned.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...interface{}) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// ConfigSyntaxError means sshd rejected the config after a managed
// edit. The file is intentionally left in its edited state; the
// service reload is withheld so the running daemon keeps its last
// good configuration.
type ConfigSyntaxError struct {
	Path string
	Err  error
}

func (e *ConfigSyntaxError) Error() string {
	return fmt.Sprintf("sshd rejected %s after edit: %v", e.Path, e.Err)
}

func (e *ConfigSyntaxError) Unwrap() error { return e.Err }
