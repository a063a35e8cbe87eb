package coordinator

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	jujuclock "github.com/juju/clock"

	"cellmaster/internal/cellerr"
	ticktimer "cellmaster/internal/clock"
	"cellmaster/internal/config"
	"cellmaster/internal/jobsource"
	"cellmaster/internal/metrics"
	"cellmaster/internal/resource"
	"cellmaster/internal/results"
	"cellmaster/internal/sequence"
	"cellmaster/internal/settings"
	"cellmaster/internal/sitefsm"
	"cellmaster/internal/stdf"
	"cellmaster/internal/testingfsm"
	"cellmaster/internal/transport"
	"cellmaster/pkg/logging"
)

// Coordinator is the Master FSM (spec §4.5): the single actor that owns
// the transport connection, the timeout timer, the STDF aggregator, the
// settings store, and the result/log collectors.
type Coordinator struct {
	cfg               config.CellConfig
	bus               transport.Bus
	clk               jujuclock.Clock
	timer             *ticktimer.Timer
	jobSource         *jobsource.Source
	settingsStore     *settings.Store
	ring              *results.Ring
	pending           *results.PendingList
	logBuf            *results.LogBuffer
	dirty             results.DirtyFlags
	metrics           *metrics.Metrics
	aggregatorFactory func() stdf.Aggregator
	aggregator        stdf.Aggregator
	publisher         Publisher
	logfilePath       string

	state         State
	lastPublished string
	errorMessage  string
	lotNumber     string
	loadParams    jobsource.LoadParameters

	controlStates map[string]ControlState
	testappStates map[string]TestappState

	controlTracker *sequence.Tracker
	testappTracker *sequence.Tracker

	multiSite        *testingfsm.FSM
	testsummarySites map[string]bool
	cycleID          string

	logfileData atomic.Pointer[[]byte]

	cmdCh          chan OperatorCommand
	timerFiredCh   chan func()
	resourceDoneCh chan func()
	tickCh         chan struct{}
	stopCh         chan struct{}
	doneCh         chan struct{}
}

// New constructs a Coordinator. aggregatorFactory creates a fresh
// stdf.Aggregator per lot load (nil disables STDF aggregation, useful in
// tests). publisher receives every operator push (spec §6); pass
// NoopPublisher{} if the test doesn't care. m may be nil.
func New(cfg config.CellConfig, bus transport.Bus, clk jujuclock.Clock, aggregatorFactory func() stdf.Aggregator, publisher Publisher, m *metrics.Metrics) *Coordinator {
	c := &Coordinator{
		cfg:               cfg,
		bus:               bus,
		clk:               clk,
		timer:             ticktimer.New(clk, cfg.EnableTimeouts),
		jobSource:         jobsource.New(cfg.JobFormat, cfg.SkipJobDataVerification),
		settingsStore:     settings.New(cfg.UserSettingsPath),
		ring:              results.NewRing(config.ResultBufferCapacity),
		pending:           &results.PendingList{},
		logBuf:            &results.LogBuffer{},
		metrics:           m,
		aggregatorFactory: aggregatorFactory,
		publisher:         publisher,
		state:             StateStartup,
		controlStates:     make(map[string]ControlState),
		testappStates:     make(map[string]TestappState),
		testsummarySites:  make(map[string]bool),
		cmdCh:             make(chan OperatorCommand, 16),
		timerFiredCh:      make(chan func(), 4),
		resourceDoneCh:    make(chan func(), 4),
		tickCh:            make(chan struct{}, 1),
		stopCh:            make(chan struct{}),
		doneCh:            make(chan struct{}),
	}
	logging.RegisterSink(func(e logging.LogEntry) {
		c.logBuf.Append(results.LogLine{
			Date:        e.Timestamp.Format(time.RFC3339),
			Level:       e.Level.String(),
			Description: e.Message,
		})
	})
	return c
}

// SetLogfilePath configures the path read by the asynchronous logfile
// worker (spec §4.7 "logfile retrieval is asynchronous").
func (c *Coordinator) SetLogfilePath(path string) { c.logfilePath = path }

// Submit enqueues an operator command for processing on the actor
// goroutine. Safe to call from any goroutine.
func (c *Coordinator) Submit(cmd OperatorCommand) { c.cmdCh <- cmd }

// NotifyUIConnected tells the actor loop a new operator UI connection was
// established (internal/uiserver calls this from its websocket upgrade
// handler). Safe to call from any goroutine.
func (c *Coordinator) NotifyUIConnected() { c.Submit(OperatorCommand{Kind: CmdUIConnected}) }

// State returns the Coordinator's current top-level state. Safe to call
// only from the actor goroutine itself (e.g. from a Publisher callback);
// external callers should track state via Publisher.PushStatus instead.
func (c *Coordinator) State() State { return c.state }

// Run drives the actor loop until Stop is called or the bus's inbox
// closes. It blocks; callers typically invoke it via `go c.Run()`.
func (c *Coordinator) Run() {
	defer close(c.doneCh)
	c.handleInitDone()
	c.scheduleTick()

	for {
		select {
		case <-c.stopCh:
			return
		case msg, ok := <-c.bus.Inbox():
			if !ok {
				return
			}
			c.handleSiteMessage(msg)
		case cmd := <-c.cmdCh:
			c.dispatchCommand(cmd)
		case fn := <-c.timerFiredCh:
			fn()
		case fn := <-c.resourceDoneCh:
			fn()
		case <-c.tickCh:
			c.handleTick()
			c.scheduleTick()
		}
	}
}

// Stop signals the actor loop to exit and blocks until it has. Idempotent.
func (c *Coordinator) Stop() {
	select {
	case <-c.stopCh:
	default:
		close(c.stopCh)
	}
	<-c.doneCh
}

func (c *Coordinator) armTimer(seconds int, onFire func()) {
	c.timer.Arm(time.Duration(seconds)*time.Second, func() {
		c.timerFiredCh <- onFire
	})
}

func (c *Coordinator) scheduleTick() {
	c.clk.AfterFunc(time.Second, func() {
		select {
		case c.tickCh <- struct{}{}:
		default:
		}
	})
}

func (c *Coordinator) noopComplete() {}

func (c *Coordinator) setState(s State) {
	c.state = s
	ext := string(s)
	if ext == c.lastPublished {
		return
	}
	c.lastPublished = ext
	if c.metrics != nil {
		c.metrics.SetState(ext)
	}
	c.publisher.PushStatus(ext, c.errorMessage)
}

func (c *Coordinator) raiseSofterror(_ cellerr.Kind, message string) {
	if c.state == StateSofterror {
		return
	}
	c.timer.Disarm()
	c.errorMessage = message
	logging.Error("coordinator", fmt.Errorf("%s", message), "transitioning to softerror")
	if c.metrics != nil {
		c.metrics.Softerrors.Inc()
	}
	// Drop any in-flight sequence trackers / per-cycle FSM: none of their
	// eventual completions may move the Coordinator out of softerror except
	// through an explicit `reset` (which rebuilds its own controlTracker).
	c.controlTracker = nil
	c.testappTracker = nil
	c.multiSite = nil
	c.setState(StateSofterror)
}

func (c *Coordinator) raiseTimeout(message string) {
	c.raiseSofterror(cellerr.KindTimeout, message)
}

func (c *Coordinator) raiseBadInterfaceVersion(site string, got int) {
	if c.state == StateError {
		return
	}
	c.timer.Disarm()
	c.errorMessage = fmt.Sprintf("bad interface version from site %s: got %d, want %d", site, got, config.InterfaceVersion)
	logging.Error("coordinator", fmt.Errorf("%s", c.errorMessage), "terminal error")
	c.controlTracker = nil
	c.testappTracker = nil
	c.multiSite = nil
	c.setState(StateError)
}

// handleInitDone runs once when the actor loop starts (spec §4.5:
// "startup | init done | connecting").
func (c *Coordinator) handleInitDone() {
	c.armTimer(config.StartupTimeoutSeconds, func() { c.raiseTimeout("not all sites became idle during startup") })
	c.controlTracker = sequence.NewExpectSequence([]string{"idle"}, c.cfg.SiteIDs, c.handleConnectingComplete, c.handleStartupUnexpected)
	c.setState(StateConnecting)
}

// handleConnectingComplete handles "connecting | all sites idle |
// initialized" and "softerror | reset | connecting"'s own completion. It
// re-arms the control tracker as a watchdog for the initialized phase
// (original's on_allsitesdetected: "trap any controls that misbehave and
// move out of the idle state"), so a control leaving idle while
// initialized raises softerror instead of being silently ignored.
func (c *Coordinator) handleConnectingComplete() {
	c.timer.Disarm()
	c.errorMessage = ""
	c.controlTracker = sequence.NewExpectSequence([]string{"idle"}, c.cfg.SiteIDs, c.noopComplete, c.handleRuntimeUnexpectedControl)
	c.setState(StateInitialized)
}

// handleStartupUnexpected implements spec §7's "Unexpected site state
// during startup or reset: logged and recorded as error_message, but
// state is ignored — the corresponding Sequence Tracker does not
// advance."
func (c *Coordinator) handleStartupUnexpected(site, state string) {
	c.errorMessage = fmt.Sprintf("unexpected control state %q from site %s during startup/reset", state, site)
	logging.Warn("coordinator", "%s", c.errorMessage)
}

// handleRuntimeUnexpectedControl/Testapp implement spec §7's "Unexpected
// site state during load/test/unload: invokes on_error, transitioning to
// softerror."
func (c *Coordinator) handleRuntimeUnexpectedControl(site, state string) {
	c.raiseSofterror(cellerr.KindUnexpectedRuntimeState, fmt.Sprintf("unexpected control state %q from site %s", state, site))
}

func (c *Coordinator) handleRuntimeUnexpectedTestapp(site, state string) {
	c.raiseSofterror(cellerr.KindUnexpectedRuntimeState, fmt.Sprintf("unexpected testapp state %q from site %s", state, site))
}

func (c *Coordinator) handleSiteMessage(msg transport.SiteMessage) {
	switch msg.Kind {
	case transport.ControlStatus:
		body, _ := msg.Body.(transport.ControlStatusBody)
		c.handleControlStatus(msg.Site, body)
	case transport.TestappStatus:
		body, _ := msg.Body.(transport.TestappStatusBody)
		c.handleTestappStatus(msg.Site, body)
	case transport.TestappTestresult:
		c.handleTestresult(msg.Site, msg.Body)
	case transport.TestappTestsummary:
		c.handleTestsummary(msg.Site, msg.Body)
	case transport.TestappResourceRequest:
		body, _ := msg.Body.(transport.ResourceRequestBody)
		c.handleResourceRequest(msg.Site, body)
	case transport.SiteDisconnected:
		c.handleSiteDisconnected(msg.Site)
	}
}

// handleControlStatus implements the "Site-status routing" paragraph of
// spec §4.5 for control_status messages, plus the interface-version
// check.
func (c *Coordinator) handleControlStatus(site string, body transport.ControlStatusBody) {
	if body.InterfaceVersion != config.InterfaceVersion {
		c.raiseBadInterfaceVersion(site, body.InterfaceVersion)
		return
	}

	newState := ControlState(body.State)
	if c.controlStates[site] == newState {
		return
	}
	c.controlStates[site] = newState
	logging.Info("coordinator", "site %s control state -> %s", site, newState)

	if c.controlTracker != nil {
		c.controlTracker.Trigger(site, string(newState))
	}
}

func (c *Coordinator) handleTestappStatus(site string, body transport.TestappStatusBody) {
	newState := TestappState(body.State)
	if c.testappStates[site] == newState {
		return
	}
	c.testappStates[site] = newState
	logging.Info("coordinator", "site %s testapp state -> %s", site, newState)

	if c.testappTracker != nil {
		c.testappTracker.Trigger(site, string(newState))
	}

	if c.state == StateTesting && newState == TestappIdle && c.multiSite != nil {
		if err := c.multiSite.StatusIdle(site); err != nil {
			c.raiseSofterror(cellerr.KindUnexpectedRuntimeState, err.Error())
		}
	}
}

// handleTestresult appends the result to the cumulative ring and the
// per-cycle pending list (spec §4.6); the UI background task drains the
// pending list into individual testresult pushes every tick (§4.7).
func (c *Coordinator) handleTestresult(site string, payload any) {
	if c.state != StateTesting {
		logging.Warn("coordinator", "testresult from site %s outside testing (state=%s), ignored", site, c.state)
		return
	}
	c.ring.Append(payload)
	c.pending.Add(payload)
	if c.metrics != nil {
		c.metrics.SiteTestresults.Inc()
	}
	if c.aggregator != nil {
		if err := c.aggregator.AppendResult(site, payload); err != nil {
			logging.Error("coordinator", err, "appending STDF result record")
		}
	}
	if c.multiSite != nil {
		if err := c.multiSite.TestresultReceived(site, payload); err != nil {
			c.raiseSofterror(cellerr.KindUnexpectedRuntimeState, err.Error())
		}
	}
}

// handleTestsummary implements spec §4.5's "STDF summaries" paragraph:
// count one per configured site, then finalize and tear down the
// aggregator.
func (c *Coordinator) handleTestsummary(site string, payload any) {
	if c.aggregator != nil {
		if err := c.aggregator.AppendSummary(site, payload); err != nil {
			logging.Error("coordinator", err, "appending STDF summary record")
		}
	}
	c.testsummarySites[site] = true
	if len(c.testsummarySites) < len(c.cfg.SiteIDs) {
		return
	}
	if c.aggregator != nil {
		if err := c.aggregator.Finalize(); err != nil {
			logging.Error("coordinator", err, "finalizing STDF aggregator")
		}
		c.aggregator = nil
	}
	c.testsummarySites = make(map[string]bool)
}

func (c *Coordinator) handleResourceRequest(site string, body transport.ResourceRequestBody) {
	if c.multiSite == nil {
		logging.Warn("coordinator", "resource request from site %s outside testing, ignored", site)
		return
	}
	req := sitefsm.ResourceRequest{ResourceID: body.ResourceID, Config: body.Config}
	if err := c.multiSite.ResourceRequested(site, req); err != nil {
		c.raiseSofterror(cellerr.KindResourceMismatch, err.Error())
	}
}

func (c *Coordinator) handleSiteDisconnected(site string) {
	c.raiseSofterror(cellerr.KindSiteDisconnect, fmt.Sprintf("site %s disconnected", site))
}

// handleTick implements the UI Background Task (spec §4.7).
func (c *Coordinator) handleTick() {
	if c.dirty.Results {
		c.publisher.PushResults(c.ring.Items())
		c.dirty.Results = false
	}
	if c.dirty.UserSettings {
		c.publisher.PushUserSettings(snapshotToAny(c.settingsStore.Snapshot()))
		c.dirty.UserSettings = false
	}
	if c.dirty.Logs {
		c.publisher.PushLogs(c.logBuf.All())
		c.dirty.Logs = false
	}
	if c.dirty.Logfile {
		c.startLogfileRead()
		c.dirty.Logfile = false
	}

	for _, r := range c.pending.Drain() {
		c.publisher.PushTestresult(r)
	}
	if lines := c.logBuf.DrainSincePeek(); len(lines) > 0 {
		c.publisher.PushLogs(lines)
	}
	if blob, ready := c.pollLogfileSlot(); ready {
		c.publisher.PushLogfile(blob)
	}
}

// startLogfileRead spawns the auxiliary worker described in spec §5: it
// reads the logfile off the actor goroutine and hands the result back via
// a single atomic pointer swap, the lock-free happens-before the spec
// calls for.
func (c *Coordinator) startLogfileRead() {
	path := c.logfilePath
	if path == "" {
		return
	}
	go func() {
		data, err := os.ReadFile(path)
		if err != nil {
			logging.Error("coordinator", err, "reading logfile")
			data = nil
		}
		c.logfileData.Store(&data)
	}()
}

func (c *Coordinator) pollLogfileSlot() ([]byte, bool) {
	p := c.logfileData.Swap(nil)
	if p == nil {
		return nil, false
	}
	return *p, true
}

func snapshotToAny(m map[string]settings.Entry) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// dispatchCommand recovers from a panicking handler per spec §7:
// "Operator command dispatch exception: caught, logged, not propagated —
// the Master remains in its current state."
func (c *Coordinator) dispatchCommand(cmd OperatorCommand) {
	err := c.safeDispatch(cmd)
	if cmd.Result != nil {
		cmd.Result <- err
	}
}

func (c *Coordinator) safeDispatch(cmd OperatorCommand) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error("coordinator", fmt.Errorf("%v", r), "operator command dispatch panicked")
			err = cellerr.New(cellerr.KindCommandDispatch, fmt.Sprintf("panic: %v", r))
		}
	}()

	switch cmd.Kind {
	case CmdLoad:
		payload, _ := cmd.Payload.(LoadPayload)
		return c.handleLoad(payload)
	case CmdNext:
		return c.handleNext()
	case CmdUnload:
		return c.handleUnload()
	case CmdReset:
		return c.handleReset()
	case CmdUserSettings:
		payload, _ := cmd.Payload.(UserSettingsPayload)
		return c.handleUserSettings(payload)
	case CmdGetResults:
		return c.handleGetResults()
	case CmdGetLogs:
		c.dirty.MarkLogs()
		return nil
	case CmdGetLogfile:
		c.dirty.MarkLogfile()
		return nil
	case CmdUIConnected:
		c.publisher.PushStatus(c.state.ExternalState(), c.errorMessage)
		c.dirty.MarkUserSettings()
		return nil
	default:
		return cellerr.New(cellerr.KindCommandDispatch, "unknown operator command kind")
	}
}

func (c *Coordinator) handleLoad(payload LoadPayload) error {
	if c.state != StateInitialized {
		return cellerr.New(cellerr.KindCommandDispatch, fmt.Sprintf("load invalid in state %s", c.state))
	}

	params, err := c.jobSource.Parse(payload.LotNumber)
	if err != nil {
		return cellerr.Annotate(cellerr.KindCommandDispatch, err, "parsing lot")
	}
	c.lotNumber = params.LotNumber
	c.loadParams = params

	c.armTimer(config.LoadTimeoutSeconds, func() { c.raiseTimeout("not all sites loaded the testprogram") })
	c.controlTracker = sequence.NewExpectSequence([]string{"loading", "busy"}, c.cfg.SiteIDs, c.noopComplete, c.handleRuntimeUnexpectedControl)
	c.testappTracker = sequence.NewExpectSequence([]string{"idle"}, c.cfg.SiteIDs, c.handleLoadComplete, c.handleRuntimeUnexpectedTestapp)

	if err := c.settingsStore.ResetToDefaults(); err != nil {
		logging.Warn("coordinator", "resetting user settings to defaults: %v", err)
	}
	c.dirty.MarkUserSettings()

	cmd := transport.SiteCommand{Kind: transport.CommandLoad, Payload: params}
	if err := c.bus.Broadcast(context.Background(), cmd); err != nil {
		return cellerr.Annotate(cellerr.KindCommandDispatch, err, "broadcasting load command")
	}

	c.setState(StateLoading)
	return nil
}

// handleLoadComplete implements "loading | all testapps idle | ready".
func (c *Coordinator) handleLoadComplete() {
	c.timer.Disarm()
	if c.aggregatorFactory != nil {
		c.aggregator = c.aggregatorFactory()
		if err := c.aggregator.Initialize(c.lotNumber); err != nil {
			c.raiseSofterror(cellerr.KindUnexpectedRuntimeState, fmt.Sprintf("initializing STDF aggregator: %v", err))
			return
		}
	}
	c.setState(StateReady)
}

func (c *Coordinator) handleNext() error {
	if c.state != StateReady {
		return cellerr.New(cellerr.KindCommandDispatch, fmt.Sprintf("next invalid in state %s", c.state))
	}

	c.cycleID = uuid.NewString()
	logging.Info("coordinator", "cycle %s starting for lot %s", c.cycleID, c.lotNumber)

	c.armTimer(config.TestTimeoutSeconds, func() { c.raiseTimeout("not all sites completed the test cycle") })
	c.testappTracker = sequence.NewExpectSequence([]string{"testing", "idle"}, c.cfg.SiteIDs, c.noopComplete, c.handleRuntimeUnexpectedTestapp)
	c.pending = &results.PendingList{}

	applier := resource.New(c.bus)
	c.multiSite = testingfsm.New(c.cfg.SiteIDs, func(req sitefsm.ResourceRequest, done func()) {
		applier.Apply(req, func() {
			c.resourceDoneCh <- done
		})
	}, c.handleAllSiteTestsComplete)

	snapshot := c.settingsStore.Snapshot()
	cmd := transport.SiteCommand{Kind: transport.CommandNext, Payload: snapshot}
	if err := c.bus.Broadcast(context.Background(), cmd); err != nil {
		return cellerr.Annotate(cellerr.KindCommandDispatch, err, "broadcasting next command")
	}

	c.setState(StateTesting)
	return nil
}

// handleAllSiteTestsComplete implements "testing.completed | all sites
// complete | ready". Per DESIGN.md's Open Question resolution 1, the
// per-cycle Multi-Site Testing FSM is destroyed here and rebuilt fresh on
// the next `next`, rather than reset in place.
func (c *Coordinator) handleAllSiteTestsComplete() {
	c.timer.Disarm()
	logging.Info("coordinator", "cycle %s complete", c.cycleID)
	if c.metrics != nil {
		c.metrics.Cycles.Inc()
	}
	c.multiSite = nil
	c.setState(StateReady)
}

func (c *Coordinator) handleUnload() error {
	if c.state != StateReady {
		return cellerr.New(cellerr.KindCommandDispatch, fmt.Sprintf("unload invalid in state %s", c.state))
	}

	c.armTimer(config.UnloadTimeoutSeconds, func() { c.raiseTimeout("not all sites unloaded") })
	c.controlTracker = sequence.NewExpectSequence([]string{"idle"}, c.cfg.SiteIDs, c.handleUnloadComplete, c.handleRuntimeUnexpectedControl)
	c.testappTracker = sequence.NewExpectSequence([]string{"terminated"}, c.cfg.SiteIDs, c.noopComplete, c.handleRuntimeUnexpectedTestapp)

	cmd := transport.SiteCommand{Kind: transport.CommandTerminate}
	if err := c.bus.Broadcast(context.Background(), cmd); err != nil {
		return cellerr.Annotate(cellerr.KindCommandDispatch, err, "broadcasting terminate command")
	}

	c.setState(StateUnloading)
	return nil
}

// handleUnloadComplete implements "unloading | all control back to idle |
// initialized".
func (c *Coordinator) handleUnloadComplete() {
	c.timer.Disarm()
	c.ring = results.NewRing(config.ResultBufferCapacity)
	c.lotNumber = ""
	c.loadParams = jobsource.LoadParameters{}
	c.testsummarySites = make(map[string]bool)
	if c.aggregator != nil {
		if err := c.aggregator.Finalize(); err != nil {
			logging.Error("coordinator", err, "finalizing STDF aggregator during unload")
		}
		c.aggregator = nil
	}
	c.controlTracker = nil
	c.testappTracker = nil
	c.setState(StateInitialized)
}

func (c *Coordinator) handleUserSettings(payload UserSettingsPayload) error {
	if c.state != StateInitialized && c.state != StateReady {
		return cellerr.New(cellerr.KindCommandDispatch, fmt.Sprintf("usersettings invalid in state %s", c.state))
	}
	if err := c.settingsStore.Apply(payload.Updates); err != nil {
		return cellerr.Annotate(cellerr.KindCommandDispatch, err, "applying user settings")
	}
	c.dirty.MarkUserSettings()
	return nil
}

func (c *Coordinator) handleGetResults() error {
	if c.state != StateReady {
		return cellerr.New(cellerr.KindCommandDispatch, fmt.Sprintf("getresults invalid in state %s", c.state))
	}
	c.dirty.MarkResults()
	return nil
}

// handleReset implements "softerror | reset | connecting".
func (c *Coordinator) handleReset() error {
	if c.state != StateSofterror {
		return cellerr.New(cellerr.KindCommandDispatch, fmt.Sprintf("reset invalid in state %s", c.state))
	}

	c.armTimer(config.ResetTimeoutSeconds, func() { c.raiseTimeout("not all sites became idle after reset") })
	c.controlTracker = sequence.NewExpectSequence([]string{"idle"}, c.cfg.SiteIDs, c.handleConnectingComplete, c.handleStartupUnexpected)
	c.testappTracker = nil
	c.multiSite = nil

	cmd := transport.SiteCommand{Kind: transport.CommandReset}
	if err := c.bus.Broadcast(context.Background(), cmd); err != nil {
		return cellerr.Annotate(cellerr.KindCommandDispatch, err, "broadcasting reset command")
	}

	c.setState(StateConnecting)
	return nil
}
