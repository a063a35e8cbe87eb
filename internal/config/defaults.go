package config

// Fixed protocol/timing constants (spec §6, "Fixed constants").
const (
	InterfaceVersion     = 1
	ResultBufferCapacity = 1000

	StartupTimeoutSeconds = 300
	LoadTimeoutSeconds    = 180
	UnloadTimeoutSeconds  = 60
	TestTimeoutSeconds    = 30
	ResetTimeoutSeconds   = 20
)

// DefaultConfig returns a CellConfig with every optional field at its
// documented default. Required fields (device_id, site_ids, broker_host) are
// intentionally left zero — LoadConfig/Validate reject a config that never
// overrides them.
func DefaultConfig() CellConfig {
	return CellConfig{
		BrokerPort:      1883,
		EnableTimeouts:  true,
		Environment:     "production",
		JobFormat:       "xml",
		WebUIHost:       "localhost",
		WebUIPort:       8081,
		WebUIStaticPath: "./web/dist",
		LogLevel:        "info",
		MetricsAddr:     ":9090",
	}
}
