package prof_test

import (
	"os"
	"path/filepath"
	"testing"

	"scopetrace/internal/prof"
)

func requireNonEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	if info.Size() == 0 {
		t.Errorf("%s is empty", path)
	}
}

func TestStartCPU(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.pprof")
	stop, err := prof.StartCPU(path)
	if err != nil {
		t.Fatalf("StartCPU: %v", err)
	}
	// A little work so the profile has something to sample.
	n := 0
	for i := 0; i < 1_000_000; i++ {
		n += i % 7
	}
	_ = n
	stop()
	requireNonEmpty(t, path)
}

func TestStartCPUBadPath(t *testing.T) {
	if _, err := prof.StartCPU(filepath.Join(t.TempDir(), "missing", "cpu.pprof")); err == nil {
		t.Error("StartCPU accepted an uncreatable path")
	}
}

func TestWriteHeap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heap.pprof")
	if err := prof.WriteHeap(path); err != nil {
		t.Fatalf("WriteHeap: %v", err)
	}
	requireNonEmpty(t, path)
}

func TestStartTrace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.out")
	stop, err := prof.StartTrace(path)
	if err != nil {
		t.Fatalf("StartTrace: %v", err)
	}
	stop()
	requireNonEmpty(t, path)
}
