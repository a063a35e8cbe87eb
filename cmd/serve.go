package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	jujuclock "github.com/juju/clock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"cellmaster/internal/config"
	"cellmaster/internal/coordinator"
	"cellmaster/internal/metrics"
	"cellmaster/internal/stdf"
	"cellmaster/internal/transport"
	"cellmaster/internal/uiserver"
	"cellmaster/pkg/logging"
)

// serveConfigPath is the path to the cell.yaml this Master loads at
// startup (spec §3: "Configuration (immutable after init)").
var serveConfigPath string

// serveSTDFDir is the directory the STDF aggregator writes lot output
// files under.
var serveSTDFDir string

// serveLogfilePath, if set, is the path the `getlogfile` operator command
// reads (spec §4.7's asynchronous logfile worker).
var serveLogfilePath string

// shutdownGrace bounds how long serve waits for in-flight HTTP requests to
// drain on SIGINT/SIGTERM; the coordinator Stop that follows is not bounded
// by it.
const shutdownGrace = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Master coordinator and operator UI server",
	Long: `Starts the cell Master: loads cell.yaml, connects to the site message
bus, and serves the operator HTTP/websocket UI until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveConfigPath, "config", "cell.yaml", "path to cell.yaml")
	serveCmd.Flags().StringVar(&serveSTDFDir, "stdf-dir", ".", "directory STDF aggregator output files are written under")
	serveCmd.Flags().StringVar(&serveLogfilePath, "logfile", "", "path the getlogfile operator command reads (empty disables it)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(serveConfigPath)
	if err != nil {
		// spec §7 "Configuration fatal ... surfaced at startup; terminal":
		// never a panic, just a logged error and a non-zero exit.
		return fmt.Errorf("loading cell configuration: %w", err)
	}

	logging.Init(parseLogLevel(cfg.LogLevel), os.Stderr)
	logging.Info("serve", "starting cellmaster for device %s (%d site(s))", cfg.DeviceID, len(cfg.SiteIDs))

	reg := prometheus.NewRegistry()
	m := metrics.New()
	m.Register(reg)

	// The wire transport to sites is explicitly out of scope (spec §1):
	// "the core sees only 'publish command X', 'a status/result arrived
	// from site Y'". FakeBus is the in-memory stub adapter SPEC_FULL.md §1
	// names for this collaborator; swapping in a real broker client only
	// requires a different transport.Bus implementation.
	bus := transport.NewFakeBus()
	defer bus.Close()

	clk := jujuclock.WallClock

	// uiserver.Server needs to exist before the Coordinator (it's the
	// Coordinator's Publisher), and the Coordinator needs to exist before
	// the Server's handlers can dispatch to it; BindCoordinator closes the
	// cycle once both are built.
	server := uiserver.New(cfg, nil, reg)

	aggregatorFactory := func() stdf.Aggregator { return stdf.NewFileAggregator(serveSTDFDir) }
	coord := coordinator.New(cfg, bus, clk, aggregatorFactory, server, m)
	if serveLogfilePath != "" {
		coord.SetLogfilePath(serveLogfilePath)
	}
	server.BindCoordinator(coord)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go coord.Run()

	serveErrCh := make(chan error, 1)
	go func() { serveErrCh <- server.Run() }()

	select {
	case <-ctx.Done():
		logging.Info("serve", "shutdown signal received, draining")
	case err := <-serveErrCh:
		if err != nil {
			logging.Error("serve", err, "operator UI server exited unexpectedly")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error("serve", err, "shutting down operator UI server")
	}
	coord.Stop()

	logging.Info("serve", "stopped")
	return nil
}

func parseLogLevel(level string) logging.LogLevel {
	switch level {
	case "debug":
		return logging.LevelDebug
	case "warn":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}
