package coordinator

import "cellmaster/internal/results"

// Publisher is the operator-facing push surface the Coordinator drives
// (spec §6 "Operator push messages produced"). internal/uiserver
// implements this over its websocket connections; tests use a fake.
type Publisher interface {
	PushStatus(externalState string, errorMessage string)
	PushTestresult(record any)
	PushResults(list []any)
	PushUserSettings(list map[string]any)
	PushLogs(lines []results.LogLine)
	PushLogfile(blob []byte)
}

// NoopPublisher discards every push; useful for tests that don't assert
// on the UI surface.
type NoopPublisher struct{}

func (NoopPublisher) PushStatus(string, string)            {}
func (NoopPublisher) PushTestresult(any)                   {}
func (NoopPublisher) PushResults([]any)                    {}
func (NoopPublisher) PushUserSettings(map[string]any)       {}
func (NoopPublisher) PushLogs([]results.LogLine)            {}
func (NoopPublisher) PushLogfile([]byte)                    {}
