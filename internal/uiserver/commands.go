package uiserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cellmaster/internal/coordinator"
	"cellmaster/internal/settings"
)

// commandRequest is the POST /api/command wire shape: verb matches one of
// spec §6's operator command verbs, payload is verb-specific.
type commandRequest struct {
	Verb    string          `json:"verb"`
	Payload json.RawMessage `json:"payload"`
}

type loadRequestPayload struct {
	LotNumber string `json:"lot_number"`
}

type userSettingsRequestPayload struct {
	Settings []userSettingsEntry `json:"settings"`
}

type userSettingsEntry struct {
	Name   string `json:"name"`
	Active bool   `json:"active"`
	Value  *int   `json:"value,omitempty"`
}

var verbKinds = map[string]coordinator.OperatorCommandKind{
	"load":         coordinator.CmdLoad,
	"next":         coordinator.CmdNext,
	"unload":       coordinator.CmdUnload,
	"reset":        coordinator.CmdReset,
	"usersettings": coordinator.CmdUserSettings,
	"getresults":   coordinator.CmdGetResults,
	"getlogs":      coordinator.CmdGetLogs,
	"getlogfile":   coordinator.CmdGetLogfile,
}

func (s *Server) handlePostCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, ok := verbKinds[req.Verb]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown command verb: " + req.Verb})
		return
	}

	payload, err := decodeCommandPayload(kind, req.Payload)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resultCh := make(chan error, 1)
	s.coord.Submit(coordinator.OperatorCommand{Kind: kind, Payload: payload, Result: resultCh})

	select {
	case err := <-resultCh:
		if err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	case <-time.After(commandTimeout):
		// The command was enqueued but the actor loop hasn't dispatched it
		// yet (spec §7's dispatch is never blocking, so this only happens
		// under an unusually deep command backlog); report accepted rather
		// than make the operator retry a command that is still in flight.
		c.JSON(http.StatusAccepted, gin.H{"ok": true, "pending": true})
	}
}

func decodeCommandPayload(kind coordinator.OperatorCommandKind, raw json.RawMessage) (any, error) {
	switch kind {
	case coordinator.CmdLoad:
		var p loadRequestPayload
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, err
			}
		}
		return coordinator.LoadPayload{LotNumber: p.LotNumber}, nil
	case coordinator.CmdUserSettings:
		var p userSettingsRequestPayload
		if len(raw) > 0 {
			if err := json.Unmarshal(raw, &p); err != nil {
				return nil, err
			}
		}
		updates := make([]settings.Update, len(p.Settings))
		for i, e := range p.Settings {
			updates[i] = settings.Update{Name: e.Name, Active: e.Active, Value: e.Value}
		}
		return coordinator.UserSettingsPayload{Updates: updates}, nil
	default:
		return nil, nil
	}
}
