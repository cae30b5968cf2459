package errs

import (
	"errors"
	"fmt"
)

// Common error sentinel values
var (
	ErrConfigInvalid = errors.New("configuration invalid")
	ErrHashing       = errors.New("password hashing failed")
	ErrCanceled      = errors.New("seeding canceled")
)

// Kind groups failures by how the caller should react to them.
type Kind int

const (
	KindInternal Kind = iota
	KindDatabase
	KindConnection
	KindConflict
	KindReference
	KindConfig
	KindCanceled
)

func (k Kind) String() string {
	switch k {
	case KindDatabase:
		return "database"
	case KindConnection:
		return "connection"
	case KindConflict:
		return "conflict"
	case KindReference:
		return "reference"
	case KindConfig:
		return "config"
	case KindCanceled:
		return "canceled"
	default:
		return "internal"
	}
}

type SeedErr struct {
	Kind    Kind
	Step    string // Seeding step that failed (admin, categories, projects, links)
	err     error
	Details string // Additional details about the error
	Cause   error  // The underlying cause of the error
}

func (e *SeedErr) Error() string {
	msg := e.err.Error()
	if e.Details != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Details)
	}
	if e.Step != "" {
		msg = fmt.Sprintf("%s: %s", e.Step, msg)
	}
	return msg
}

// GetFullError returns a recursive error message including all causes
func (e *SeedErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var inner *SeedErr
		if errors.As(e.Cause, &inner) {
			msg = fmt.Sprintf("%s -> %s", msg, inner.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// errors.Is matches both the sentinel and anything in the cause chain.
func (e *SeedErr) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.err}
	}
	return []error{e.err, e.Cause}
}

func NewConfigError(field, details string) *SeedErr {
	return &SeedErr{
		Kind:    KindConfig,
		Step:    "config",
		err:     ErrConfigInvalid,
		Details: fmt.Sprintf("%s: %s", field, details),
	}
}

func NewHashingError(step string, cause error) *SeedErr {
	return &SeedErr{
		Kind:  KindInternal,
		Step:  step,
		err:   ErrHashing,
		Cause: cause,
	}
}

// KindOf returns the kind of the outermost SeedErr in err's chain.
func KindOf(err error) Kind {
	var seedErr *SeedErr
	if errors.As(err, &seedErr) {
		return seedErr.Kind
	}
	return KindInternal
}

// ExitCode maps an error returned by the seeding run to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindConfig:
		return 2
	case KindCanceled:
		return 130
	default:
		return 1
	}
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfigInvalid)
}

func IsCanceled(err error) bool {
	return errors.Is(err, ErrCanceled)
}
