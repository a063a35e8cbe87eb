// Package jobsource parses the operator's `load` lot identifier into the
// test parameters broadcast to every site (spec §6 + SPEC_FULL.md
// supplemented feature 2/3/4).
//
// Grounded on the original's get_test_parameters in master_application.py:
// the lot string's optional "|<variant>" suffix selects a test-zip mock
// variant (default "sleepmock"), and skip_jobdata_verification bypasses
// real job-file parsing in favor of a fixed placeholder payload.
package jobsource

import (
	"strings"

	"github.com/juju/errors"
)

// DefaultVariant is used when the lot string carries no "|<variant>"
// suffix.
const DefaultVariant = "sleepmock"

// skipVerificationPlaceholder is sent verbatim as the XML field when the
// Coordinator is configured with skip_jobdata_verification.
const skipVerificationPlaceholder = "no content because skip_jobdata_verification enabled"

// LoadParameters is the parsed job/lot description sent to every site in
// the `load` command (spec §4.5, SPEC_FULL.md supplemented feature 3).
type LoadParameters struct {
	LotNumber         string
	Variant           string
	TestappScriptPath string
	TestappScriptArgs []string
	Cwd               string
	XML               string
}

// Source parses a lot identifier into LoadParameters. The coordinator owns
// exactly one Source, configured at startup from CellConfig.
type Source struct {
	jobFormat               string
	skipJobdataVerification bool
}

// New creates a Source. jobFormat mirrors CellConfig.JobFormat;
// skipVerification mirrors CellConfig.SkipJobDataVerification.
func New(jobFormat string, skipVerification bool) *Source {
	return &Source{jobFormat: jobFormat, skipJobdataVerification: skipVerification}
}

// Parse splits lot on the first "|" to extract an optional variant
// (defaulting to DefaultVariant), then either bypasses job-file parsing
// (skip_jobdata_verification) or resolves real test parameters for the
// lot.
func (s *Source) Parse(lot string) (LoadParameters, error) {
	if lot == "" {
		return LoadParameters{}, errors.New("lot number must not be empty")
	}

	lotNumber, variant := lot, DefaultVariant
	if i := strings.IndexByte(lot, '|'); i >= 0 {
		lotNumber, variant = lot[:i], lot[i+1:]
		if variant == "" {
			variant = DefaultVariant
		}
	}

	params := LoadParameters{
		LotNumber: lotNumber,
		Variant:   variant,
		Cwd:       "./" + lotNumber,
	}

	if s.skipJobdataVerification {
		params.XML = skipVerificationPlaceholder
		params.TestappScriptPath = "./" + variant + "/run.py"
		return params, nil
	}

	params.TestappScriptPath = "./" + variant + "/run.py"
	params.TestappScriptArgs = []string{"--lot", lotNumber, "--format", s.jobFormat}
	params.XML = "<job lot=\"" + lotNumber + "\" variant=\"" + variant + "\"/>"
	return params, nil
}
