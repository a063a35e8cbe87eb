package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_NoPathStartsFromDefaults(t *testing.T) {
	s := New("")
	snap := s.Snapshot()
	if len(snap) != len(Defaults) {
		t.Fatalf("snapshot has %d entries, want %d", len(snap), len(Defaults))
	}
	for name, want := range Defaults {
		if got := snap[name]; got != want {
			t.Errorf("%s = %+v, want %+v", name, got, want)
		}
	}
}

func TestApply_MergesAndDefaultsAbsentValue(t *testing.T) {
	s := New("")
	if err := s.Apply([]Update{{Name: "stop_on_fail", Active: true, Value: nil}}); err != nil {
		t.Fatal(err)
	}
	snap := s.Snapshot()
	if snap["stop_on_fail"] != (Entry{Active: true, Value: -1}) {
		t.Errorf("stop_on_fail = %+v", snap["stop_on_fail"])
	}
	// Names not mentioned in the update are untouched.
	if snap["retest_count"] != Defaults["retest_count"] {
		t.Errorf("retest_count should be unchanged, got %+v", snap["retest_count"])
	}
}

func TestApply_CoercesProvidedValue(t *testing.T) {
	s := New("")
	v := 7
	if err := s.Apply([]Update{{Name: "retest_count", Active: true, Value: &v}}); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot()["retest_count"]; got != (Entry{Active: true, Value: 7}) {
		t.Errorf("retest_count = %+v", got)
	}
}

func TestStore_PersistsAndReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")

	s := New(path)
	v := 3
	if err := s.Apply([]Update{{Name: "retest_count", Active: true, Value: &v}}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected settings file to be written: %v", err)
	}

	reloaded := New(path)
	if got := reloaded.Snapshot()["retest_count"]; got != (Entry{Active: true, Value: 3}) {
		t.Errorf("reloaded retest_count = %+v", got)
	}
}

func TestStore_ResetToDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	s := New(path)
	v := 9
	s.Apply([]Update{{Name: "retest_count", Active: true, Value: &v}})

	if err := s.ResetToDefaults(); err != nil {
		t.Fatal(err)
	}
	if got := s.Snapshot()["retest_count"]; got != Defaults["retest_count"] {
		t.Errorf("after reset retest_count = %+v, want default %+v", got, Defaults["retest_count"])
	}

	reloaded := New(path)
	if got := reloaded.Snapshot()["retest_count"]; got != Defaults["retest_count"] {
		t.Errorf("persisted reset did not survive reload: %+v", got)
	}
}

func TestNew_MissingFileFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "does-not-exist.yaml"))
	snap := s.Snapshot()
	if len(snap) != len(Defaults) {
		t.Fatalf("snapshot has %d entries, want %d", len(snap), len(Defaults))
	}
}
