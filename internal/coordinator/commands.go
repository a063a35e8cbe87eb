package coordinator

import "cellmaster/internal/settings"

// OperatorCommandKind enumerates the operator command verbs (spec §6).
type OperatorCommandKind int

const (
	CmdLoad OperatorCommandKind = iota
	CmdNext
	CmdUnload
	CmdReset
	CmdUserSettings
	CmdGetResults
	CmdGetLogs
	CmdGetLogfile
	// CmdUIConnected is an internal-only command (not an operator verb from
	// spec §6) raised by internal/uiserver on every new websocket upgrade.
	// SPEC_FULL.md "Supplemented features" #5: the original marks
	// usersettings and status dirty on `on_new_connection` so a freshly
	// connected browser gets an immediate snapshot.
	CmdUIConnected
)

// LoadPayload is the payload of a CmdLoad command.
type LoadPayload struct {
	LotNumber string
}

// UserSettingsPayload is the payload of a CmdUserSettings command.
type UserSettingsPayload struct {
	Updates []settings.Update
}

// OperatorCommand is one inbound operator command (spec §6).
type OperatorCommand struct {
	Kind    OperatorCommandKind
	Payload any
	// Result, if non-nil, receives the outcome of dispatching this command
	// (spec §7: "Operator command dispatch exception: caught, logged, not
	// propagated" — the caller can still observe it via this channel if it
	// wants synchronous feedback, e.g. the HTTP handler returning 4xx).
	Result chan error
}
