// Package stdf defines the Coordinator's STDF aggregator collaborator
// (spec §9 GLOSSARY: "the industry-standard binary format for ATE test
// results; aggregated by an external collaborator"). The Coordinator
// treats test results and summaries as opaque payloads; this package owns
// turning those payloads into STDF records and does not interpret them
// beyond that.
//
// Grounded on the original's StdfAggregator collaborator referenced from
// master_application.py (initialize on all-testapps-idle, finalize once a
// testapp_testsummary has arrived from every site); no real STDF encoder
// is reachable from the retrieval pack, so FileAggregator here writes a
// line-oriented placeholder record per append rather than a byte-accurate
// STDF binary — the record shape is opaque to the Coordinator either way.
package stdf

import (
	"fmt"
	"os"

	"github.com/juju/errors"
)

// Aggregator accumulates opaque test-result and test-summary payloads for
// one lot (the Coordinator creates one when a load completes and finalizes
// it once every site has sent a summary, or on unload) into an STDF-format
// output, scoped from Initialize to
// Finalize (spec §4.5: "initialize STDF aggregator; write STDF header" /
// "finalizes and tears down the aggregator").
type Aggregator interface {
	// Initialize opens the aggregator for a new lot and writes its header.
	Initialize(lotNumber string) error
	// AppendResult records one site's opaque testresult payload.
	AppendResult(site string, payload any) error
	// AppendSummary records one site's opaque testsummary payload.
	AppendSummary(site string, payload any) error
	// Finalize writes any trailing record and releases the aggregator's
	// resources (spec §5: "exclusively owned by the Coordinator ... with
	// guaranteed cleanup on all exit paths").
	Finalize() error
}

// FileAggregator is the default Aggregator, writing one line per event to
// a plain file under outputDir named after the lot number.
type FileAggregator struct {
	outputDir string
	file      *os.File
}

// NewFileAggregator creates a FileAggregator that writes under outputDir.
func NewFileAggregator(outputDir string) *FileAggregator {
	return &FileAggregator{outputDir: outputDir}
}

func (a *FileAggregator) Initialize(lotNumber string) error {
	path := fmt.Sprintf("%s/%s.stdf", a.outputDir, lotNumber)
	f, err := os.Create(path)
	if err != nil {
		return errors.Annotate(err, "opening STDF output file")
	}
	a.file = f
	_, err = fmt.Fprintf(f, "FAR|lot=%s\n", lotNumber)
	return errors.Annotate(err, "writing STDF header")
}

func (a *FileAggregator) AppendResult(site string, payload any) error {
	if a.file == nil {
		return errors.New("AppendResult called before Initialize")
	}
	_, err := fmt.Fprintf(a.file, "PTR|site=%s|%v\n", site, payload)
	return errors.Annotate(err, "appending STDF result record")
}

func (a *FileAggregator) AppendSummary(site string, payload any) error {
	if a.file == nil {
		return errors.New("AppendSummary called before Initialize")
	}
	_, err := fmt.Fprintf(a.file, "SUM|site=%s|%v\n", site, payload)
	return errors.Annotate(err, "appending STDF summary record")
}

func (a *FileAggregator) Finalize() error {
	if a.file == nil {
		return nil
	}
	_, err := fmt.Fprintf(a.file, "MRR\n")
	closeErr := a.file.Close()
	a.file = nil
	if err != nil {
		return errors.Annotate(err, "writing STDF trailer")
	}
	return errors.Annotate(closeErr, "closing STDF output file")
}
