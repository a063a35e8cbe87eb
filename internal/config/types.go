package config

// CellConfig is the top-level, immutable configuration of a Master process.
// It is read once at startup (see LoadConfig) and never mutated afterwards.
type CellConfig struct {
	// DeviceID identifies this cell to the STDF aggregator and to sites.
	DeviceID string `yaml:"device_id"`

	// SiteIDs is the non-empty ordered list of site identifiers this Master
	// coordinates. Order is preserved; it is not a set.
	SiteIDs []string `yaml:"site_ids"`

	// BrokerHost/BrokerPort address the pub/sub transport to sites.
	BrokerHost string `yaml:"broker_host"`
	BrokerPort int    `yaml:"broker_port"`

	// EnableTimeouts turns the Timeout Timer on or off cell-wide. Disabled
	// only for interactive debugging against real hardware.
	EnableTimeouts bool `yaml:"enable_timeouts"`

	Environment string `yaml:"environment"`
	JobFormat   string `yaml:"job_format"`

	// UserSettingsPath, if set, persists the user-settings snapshot to disk.
	UserSettingsPath string `yaml:"user_settings_path,omitempty"`

	// SkipJobDataVerification bypasses job-file parsing/verification
	// entirely; used for mock test-zip variants during development.
	SkipJobDataVerification bool `yaml:"skip_jobdata_verification,omitempty"`

	// WebUI* configure the operator-facing HTTP/WebSocket surface.
	WebUIHost       string `yaml:"webui_host,omitempty"`
	WebUIPort       int    `yaml:"webui_port,omitempty"`
	WebUIStaticPath string `yaml:"webui_static_path,omitempty"`

	LogLevel    string `yaml:"log_level,omitempty"`
	MetricsAddr string `yaml:"metrics_addr,omitempty"`
}
