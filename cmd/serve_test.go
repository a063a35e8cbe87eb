package cmd

import (
	"testing"

	"cellmaster/pkg/logging"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]logging.LogLevel{
		"debug": logging.LevelDebug,
		"warn":  logging.LevelWarn,
		"error": logging.LevelError,
		"info":  logging.LevelInfo,
		"":      logging.LevelInfo,
		"bogus": logging.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLogLevel(input); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestServeCommandRegistered(t *testing.T) {
	found := false
	for _, c := range rootCmd.Commands() {
		if c.Name() == "serve" {
			found = true
		}
	}
	if !found {
		t.Error("expected serve subcommand to be registered on rootCmd")
	}
}

func TestServeFlagDefaults(t *testing.T) {
	configFlag := serveCmd.Flags().Lookup("config")
	if configFlag == nil || configFlag.DefValue != "cell.yaml" {
		t.Errorf("expected --config default 'cell.yaml', got %+v", configFlag)
	}

	stdfFlag := serveCmd.Flags().Lookup("stdf-dir")
	if stdfFlag == nil || stdfFlag.DefValue != "." {
		t.Errorf("expected --stdf-dir default '.', got %+v", stdfFlag)
	}

	logfileFlag := serveCmd.Flags().Lookup("logfile")
	if logfileFlag == nil || logfileFlag.DefValue != "" {
		t.Errorf("expected --logfile default '', got %+v", logfileFlag)
	}
}
