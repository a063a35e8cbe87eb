// Package logging provides the Master's structured logging: a thin wrapper
// over log/slog, bridged into controller-runtime's logr interface so any
// controller-runtime-derived component logs through the same sink.
//
// Log levels: Debug, Info, Warn, Error. RegisterSink subscribes a
// callback that receives each LogEntry as it is emitted; internal/coordinator
// uses this to mirror the process log into its results.LogBuffer, which the
// UI background task drains (spec §4.6/§4.7), instead of maintaining a
// second, separately-formatted log path.
package logging
