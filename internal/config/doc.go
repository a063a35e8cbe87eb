// Package config loads the immutable configuration of a cell Master process.
//
// Configuration is read once at startup from a single YAML file and never
// reloaded: the cell's site list, broker address, and timeout policy are
// fixed for the lifetime of the process (spec: "Configuration (immutable
// after init)"). There is deliberately no layered user/project merge and no
// filesystem watch here — unlike a long-running multi-tenant CLI, a Master
// process serves exactly one cell for its whole lifetime.
package config
