package uiserver

import (
	"encoding/base64"

	"cellmaster/internal/results"
)

// pushLogLine is the wire shape of one log entry (spec §6: "logs(list of
// {date,type,description})").
type pushLogLine struct {
	Date        string `json:"date"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// statusPush is the wire shape of a status push (spec §6: "status
// (external_state, error_message)").
type statusPush struct {
	State        string `json:"state"`
	ErrorMessage string `json:"error_message"`
}

// PushStatus implements coordinator.Publisher.
func (s *Server) PushStatus(externalState, errorMessage string) {
	s.hub.broadcast(wsMessage{Type: "status", Data: statusPush{State: externalState, ErrorMessage: errorMessage}})
}

// PushTestresult implements coordinator.Publisher.
func (s *Server) PushTestresult(record any) {
	s.hub.broadcast(wsMessage{Type: "testresult", Data: record})
}

// PushResults implements coordinator.Publisher.
func (s *Server) PushResults(list []any) {
	s.hub.broadcast(wsMessage{Type: "results", Data: list})
}

// PushUserSettings implements coordinator.Publisher.
func (s *Server) PushUserSettings(list map[string]any) {
	s.hub.broadcast(wsMessage{Type: "user_settings", Data: list})
}

// PushLogs implements coordinator.Publisher.
func (s *Server) PushLogs(lines []results.LogLine) {
	if len(lines) == 0 {
		return
	}
	out := make([]pushLogLine, len(lines))
	for i, l := range lines {
		out[i] = pushLogLine{Date: l.Date, Type: l.Level, Description: l.Description}
	}
	s.hub.broadcast(wsMessage{Type: "logs", Data: out})
}

// PushLogfile implements coordinator.Publisher. The blob is base64-encoded
// since the push channel is JSON-over-websocket, not a raw binary frame;
// the operator UI decodes it client-side.
func (s *Server) PushLogfile(blob []byte) {
	s.hub.broadcast(wsMessage{Type: "logfile", Data: base64.StdEncoding.EncodeToString(blob)})
}
