package logger

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// lockedBuffer lets the race detector tell logger races from buffer races.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestConcurrency_MultipleLevels verifies that the mutex prevents garbled output
// when multiple goroutines log simultaneously at different levels.
func TestConcurrency_MultipleLevels(t *testing.T) {
	captureOutput(t)
	console := &lockedBuffer{}
	outStdout = console
	logPath := filepath.Join(t.TempDir(), "concurrent.log")

	l := mustNew(t, Config{Name: "svc", FilePath: logPath, Level: WarningLevel, ConsoleOutput: true})

	const numGoroutines = 50
	const messagesPerGoroutine = 20

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				l.Debugf("goroutine-%d-debug-%d", id, j)
				l.Infof("goroutine-%d-info-%d", id, j)
				l.Warningf("goroutine-%d-warn-%d", id, j)
				l.Errorf("goroutine-%d-error-%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	consoleLines := strings.Split(strings.TrimSpace(console.String()), "\n")
	if want := numGoroutines * messagesPerGoroutine * 4; len(consoleLines) != want {
		t.Fatalf("expected %d console lines, got %d", want, len(consoleLines))
	}

	fileLines := strings.Split(strings.TrimSpace(readFile(t, logPath)), "\n")
	if want := numGoroutines * messagesPerGoroutine * 2; len(fileLines) != want {
		t.Fatalf("expected %d file lines, got %d", want, len(fileLines))
	}

	// Every line must be a complete record.
	for i, line := range append(consoleLines, fileLines...) {
		parts := strings.SplitN(line, ":", 7)
		if len(parts) != 7 || parts[4] != "svc" || !strings.HasPrefix(parts[6], "goroutine-") {
			t.Fatalf("line %d appears garbled: %q", i, line)
		}
	}
}

// TestConcurrency_PerGoroutineOrder verifies that one goroutine's records keep call order in the file.
func TestConcurrency_PerGoroutineOrder(t *testing.T) {
	captureOutput(t)
	logPath := filepath.Join(t.TempDir(), "order.log")
	l := mustNew(t, Config{Name: "svc", FilePath: logPath})

	const numGoroutines = 10
	const messagesPerGoroutine = 50

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < messagesPerGoroutine; j++ {
				l.Infof("g%d-%d", id, j)
			}
		}(i)
	}
	wg.Wait()

	next := make(map[string]int)
	for _, line := range strings.Split(strings.TrimSpace(readFile(t, logPath)), "\n") {
		msg := line[strings.LastIndex(line, ":")+1:]
		var id, seq int
		if _, err := fmt.Sscanf(msg, "g%d-%d", &id, &seq); err != nil {
			t.Fatalf("unexpected line %q: %v", line, err)
		}
		key := fmt.Sprint(id)
		if seq != next[key] {
			t.Fatalf("goroutine %d: got message %d, want %d", id, seq, next[key])
		}
		next[key]++
	}
	if len(next) != numGoroutines {
		t.Fatalf("expected records from %d goroutines, got %d", numGoroutines, len(next))
	}
}

// TestConcurrency_WrappedCalls verifies wrappers can be shared across goroutines.
func TestConcurrency_WrappedCalls(t *testing.T) {
	captureOutput(t)
	console := &lockedBuffer{}
	outStdout = console

	l := mustNew(t, DefaultConfig("svc"))
	wrapped := Wrap(l, double)

	const numGoroutines = 100
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(n int) {
			defer wg.Done()
			if got, err := wrapped(n); err != nil || got != n*2 {
				t.Errorf("wrapped(%d) = %d, %v", n, got, err)
			}
		}(i)
	}
	wg.Wait()

	out := console.String()
	if got := strings.Count(out, "About to run logger.double"); got != numGoroutines {
		t.Errorf("expected %d entry messages, got %d", numGoroutines, got)
	}
	if got := strings.Count(out, "Done running logger.double"); got != numGoroutines {
		t.Errorf("expected %d exit messages, got %d", numGoroutines, got)
	}
}
