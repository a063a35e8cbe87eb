package cellerr

import (
	"errors"
	"testing"
)

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Annotate(KindTimeout, cause, "load timed out")

	if !errors.Is(err, cause) {
		t.Error("expected errors.Is to see through Annotate to the cause")
	}
}

func TestError_IsTerminal(t *testing.T) {
	cases := []struct {
		kind     Kind
		terminal bool
	}{
		{KindConfigFatal, true},
		{KindBadInterfaceVersion, true},
		{KindTimeout, false},
		{KindSiteDisconnect, false},
		{KindResourceMismatch, false},
		{KindUnexpectedStartupState, false},
	}
	for _, c := range cases {
		e := New(c.kind, "x")
		if e.IsTerminal() != c.terminal {
			t.Errorf("%s: IsTerminal() = %v, want %v", c.kind, e.IsTerminal(), c.terminal)
		}
	}
}

func TestError_IsSofterror(t *testing.T) {
	cases := []struct {
		kind Kind
		soft bool
	}{
		{KindTimeout, true},
		{KindSiteDisconnect, true},
		{KindResourceMismatch, true},
		{KindUnexpectedRuntimeState, true},
		{KindConfigFatal, false},
		{KindBadInterfaceVersion, false},
		{KindUnexpectedStartupState, false},
		{KindCommandDispatch, false},
	}
	for _, c := range cases {
		e := New(c.kind, "x")
		if e.IsSofterror() != c.soft {
			t.Errorf("%s: IsSofterror() = %v, want %v", c.kind, e.IsSofterror(), c.soft)
		}
	}
}

func TestKind_String(t *testing.T) {
	if KindTimeout.String() != "timeout" {
		t.Errorf("String() = %q", KindTimeout.String())
	}
}
