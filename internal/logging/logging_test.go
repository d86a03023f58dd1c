package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
)

func TestSetupWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "zukan.log")

	closer, err := Setup("debug", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closer.Close()

	log.Debug("hello from test")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Fatalf("log entry not written, got: %q", data)
	}
}

func TestSetupRejectsBadLevel(t *testing.T) {
	if _, err := Setup("loudest", filepath.Join(t.TempDir(), "z.log")); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestDefaultLogPathRespectsXDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/state")
	if got := DefaultLogPath(); got != "/tmp/state/zukan/zukan.log" {
		t.Fatalf("unexpected path: %q", got)
	}
}
