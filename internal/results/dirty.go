package results

// DirtyFlags tracks which operator-facing push topics have pending data
// since they were last sent, per the UI background task's per-second
// sweep (spec §4.7): "checks each dirty flag and when set, invokes the
// corresponding transport push, then clears the flag."
type DirtyFlags struct {
	Results     bool
	UserSettings bool
	Logs        bool
	Logfile     bool
}

// MarkResults marks the results topic dirty (operator `getresults`).
func (d *DirtyFlags) MarkResults() { d.Results = true }

// MarkUserSettings marks the user_settings topic dirty (settings write).
func (d *DirtyFlags) MarkUserSettings() { d.UserSettings = true }

// MarkLogs marks the logs topic dirty (operator `getlogs`).
func (d *DirtyFlags) MarkLogs() { d.Logs = true }

// MarkLogfile marks the logfile topic dirty (operator `getlogfile`).
func (d *DirtyFlags) MarkLogfile() { d.Logfile = true }
