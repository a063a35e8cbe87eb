package config

import "strings"

// Validate checks the required fields spec.md §3 and §7 name: a non-empty
// device_id, at least one site, and a broker host. It returns every problem
// found, not just the first, via FieldErrors.
func Validate(c CellConfig) FieldErrors {
	var errs FieldErrors

	if strings.TrimSpace(c.DeviceID) == "" {
		errs.add("device_id", "must not be empty")
	}
	if len(c.SiteIDs) == 0 {
		errs.add("site_ids", "must contain at least one site")
	}
	seen := make(map[string]bool, len(c.SiteIDs))
	for _, id := range c.SiteIDs {
		if strings.TrimSpace(id) == "" {
			errs.add("site_ids", "must not contain an empty site id")
			continue
		}
		if seen[id] {
			errs.add("site_ids", "must not contain duplicate site id "+id)
		}
		seen[id] = true
	}
	if strings.TrimSpace(c.BrokerHost) == "" {
		errs.add("broker_host", "must not be empty")
	}
	if c.BrokerPort <= 0 || c.BrokerPort > 65535 {
		errs.add("broker_port", "must be a valid TCP port")
	}

	return errs
}
