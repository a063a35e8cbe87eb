package config

import (
	"fmt"
	"os"

	"cellmaster/pkg/logging"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a single cell.yaml from path, overlays it onto
// DefaultConfig, and validates the result. A missing file is not an error by
// itself only if the caller never needed one — in practice device_id/
// site_ids/broker_host have no sane default, so an absent or incomplete file
// still fails Validate. This mirrors spec §7's "Configuration fatal (missing
// required config key, zero sites): surfaced at startup; terminal."
func LoadConfig(path string) (CellConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Warn("config", "no config file at %s, using defaults only", path)
		} else {
			return CellConfig{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return CellConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
		logging.Info("config", "loaded cell configuration from %s", path)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return CellConfig{}, asFatal(errs)
	}
	return cfg, nil
}
