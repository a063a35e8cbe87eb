// Package cellerr defines the Coordinator's error taxonomy (spec §7): the
// fixed set of error kinds the coordinator distinguishes when deciding
// whether a fault is configuration-fatal, terminal, ignorable, or a
// softerror transition.
//
// Grounded on the original's exception hierarchy in master_application.py
// (BadInterfaceVersionError, UnexpectedStateError, ResourceMismatchError,
// TimeoutError subclasses), re-expressed as a Go error-kind enum wrapped
// with github.com/juju/errors so call sites can still Annotate freely.
package cellerr

import "github.com/juju/errors"

// Kind classifies a coordinator-level error for dispatch purposes.
type Kind int

const (
	// KindConfigFatal: missing required config key, zero sites. Surfaced at
	// startup; terminal before the coordinator ever starts its actor loop.
	KindConfigFatal Kind = iota
	// KindBadInterfaceVersion: connecting -> error, terminal until restart.
	KindBadInterfaceVersion
	// KindUnexpectedStartupState: unexpected site state during startup or
	// reset; logged, state ignored, sequence tracker does not advance.
	KindUnexpectedStartupState
	// KindUnexpectedRuntimeState: unexpected site state during
	// load/test/unload; transitions to softerror.
	KindUnexpectedRuntimeState
	// KindTimeout: an armed timer fired; transitions to softerror.
	KindTimeout
	// KindSiteDisconnect: transitions to softerror.
	KindSiteDisconnect
	// KindResourceMismatch: resource-request mismatch across sites within
	// one cycle; transitions to softerror.
	KindResourceMismatch
	// KindCommandDispatch: an operator command handler panicked or
	// returned an error; caught, logged, not propagated.
	KindCommandDispatch
)

func (k Kind) String() string {
	switch k {
	case KindConfigFatal:
		return "config_fatal"
	case KindBadInterfaceVersion:
		return "bad_interface_version"
	case KindUnexpectedStartupState:
		return "unexpected_startup_state"
	case KindUnexpectedRuntimeState:
		return "unexpected_runtime_state"
	case KindTimeout:
		return "timeout"
	case KindSiteDisconnect:
		return "site_disconnect"
	case KindResourceMismatch:
		return "resource_mismatch"
	case KindCommandDispatch:
		return "command_dispatch"
	default:
		return "unknown"
	}
}

// Error is a coordinator-level error carrying its Kind alongside the
// underlying cause, so handlers can switch on Kind without string
// matching.
type Error struct {
	Kind  Kind
	cause error
}

// New creates an Error of the given kind wrapping a message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, cause: errors.New(message)}
}

// Annotate wraps err with the given kind and message, preserving err as
// the cause via github.com/juju/errors.
func Annotate(kind Kind, err error, message string) *Error {
	return &Error{Kind: kind, cause: errors.Annotate(err, message)}
}

func (e *Error) Error() string { return e.cause.Error() }

func (e *Error) Unwrap() error { return e.cause }

// IsTerminal reports whether this error kind leaves the coordinator unable
// to recover without a process restart (as opposed to softerror, which
// recovers via operator reset).
func (e *Error) IsTerminal() bool {
	return e.Kind == KindConfigFatal || e.Kind == KindBadInterfaceVersion
}

// IsSofterror reports whether this error kind transitions the coordinator
// to the softerror state.
func (e *Error) IsSofterror() bool {
	switch e.Kind {
	case KindUnexpectedRuntimeState, KindTimeout, KindSiteDisconnect, KindResourceMismatch:
		return true
	default:
		return false
	}
}
