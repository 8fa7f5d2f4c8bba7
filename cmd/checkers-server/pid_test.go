package main

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestWritePIDFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.pid")

	release, err := writePIDFile(path, true)
	if err != nil {
		t.Fatalf("writePIDFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got := strings.TrimSpace(string(data)); got != strconv.Itoa(os.Getpid()) {
		t.Errorf("PID file = %q; want %d", got, os.Getpid())
	}

	release()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("PID file left behind: %v", err)
	}
}

func TestWritePIDFileCorrupted(t *testing.T) {
	path := filepath.Join(t.TempDir(), "checkers.pid")
	if err := os.WriteFile(path, []byte("not-a-pid\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := writePIDFile(path, true); err == nil {
		t.Fatal("locked start over a corrupted PID file succeeded")
	}

	release, err := writePIDFile(path, false)
	if err != nil {
		t.Fatalf("unlocked start: %v", err)
	}
	release()
}
