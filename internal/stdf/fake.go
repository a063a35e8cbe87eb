package stdf

// FakeAggregator is an in-memory Aggregator for tests: it records every
// call instead of touching the filesystem, so coordinator tests can assert
// on lifecycle ordering (initialize -> appends -> finalize) without a real
// STDF file.
type FakeAggregator struct {
	Initialized bool
	Finalized   bool
	LotNumber   string
	Results     []FakeRecord
	Summaries   []FakeRecord

	InitializeErr error
}

// FakeRecord is one recorded append call.
type FakeRecord struct {
	Site    string
	Payload any
}

func (f *FakeAggregator) Initialize(lotNumber string) error {
	if f.InitializeErr != nil {
		return f.InitializeErr
	}
	f.Initialized = true
	f.LotNumber = lotNumber
	return nil
}

func (f *FakeAggregator) AppendResult(site string, payload any) error {
	f.Results = append(f.Results, FakeRecord{Site: site, Payload: payload})
	return nil
}

func (f *FakeAggregator) AppendSummary(site string, payload any) error {
	f.Summaries = append(f.Summaries, FakeRecord{Site: site, Payload: payload})
	return nil
}

func (f *FakeAggregator) Finalize() error {
	f.Finalized = true
	return nil
}
