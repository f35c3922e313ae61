package app

import (
	"strings"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()
	if m == nil {
		t.Fatal("NewMetrics() returned nil")
	}

	snapshot := m.Snapshot()
	if snapshot.KeyCount != 0 {
		t.Errorf("expected 0 keys, got %d", snapshot.KeyCount)
	}
	if snapshot.AvgKeyNs != 0 {
		t.Errorf("expected 0 average with no keys, got %d", snapshot.AvgKeyNs)
	}
}

func TestMetrics_RecordKey(t *testing.T) {
	m := NewMetrics()

	m.RecordKey(1 * time.Millisecond)
	m.RecordKey(2 * time.Millisecond)

	snapshot := m.Snapshot()
	if snapshot.KeyCount != 2 {
		t.Errorf("expected 2 keys, got %d", snapshot.KeyCount)
	}
	expectedAvg := int64(1500000) // 1.5ms in nanoseconds
	if snapshot.AvgKeyNs != expectedAvg {
		t.Errorf("expected avg key time %d ns, got %d ns", expectedAvg, snapshot.AvgKeyNs)
	}
}

func TestMetrics_RecordIgnoredInput(t *testing.T) {
	m := NewMetrics()

	m.RecordIgnoredInput()
	m.RecordIgnoredInput()
	m.RecordIgnoredInput()

	if got := m.Snapshot().InputIgnored; got != 3 {
		t.Errorf("expected 3 ignored inputs, got %d", got)
	}
}

func TestMetrics_RecordRender(t *testing.T) {
	m := NewMetrics()

	m.RecordRender(4 * time.Millisecond)
	m.RecordRender(2 * time.Millisecond)

	snapshot := m.Snapshot()
	if snapshot.RenderCount != 2 {
		t.Errorf("expected 2 renders, got %d", snapshot.RenderCount)
	}
	if snapshot.AvgRenderNs != int64(3*time.Millisecond) {
		t.Errorf("expected avg 3ms, got %d ns", snapshot.AvgRenderNs)
	}
}

func TestMetrics_RecordCommand(t *testing.T) {
	m := NewMetrics()

	m.RecordCommand(10*time.Millisecond, false)
	m.RecordCommand(30*time.Millisecond, true)
	m.RecordCommand(20*time.Millisecond, false)

	snapshot := m.Snapshot()
	if snapshot.CommandCount != 3 {
		t.Errorf("expected 3 commands, got %d", snapshot.CommandCount)
	}
	if snapshot.CommandsFailed != 1 {
		t.Errorf("expected 1 failed command, got %d", snapshot.CommandsFailed)
	}
	if snapshot.MaxCommandNs != int64(30*time.Millisecond) {
		t.Errorf("expected max 30ms, got %d ns", snapshot.MaxCommandNs)
	}
	if snapshot.AvgCommandNs != int64(20*time.Millisecond) {
		t.Errorf("expected avg 20ms, got %d ns", snapshot.AvgCommandNs)
	}
}

func TestMetricsSnapshot_String(t *testing.T) {
	m := NewMetrics()
	m.RecordKey(time.Millisecond)
	m.RecordCommand(time.Second, true)

	s := m.Snapshot().String()
	for _, want := range []string{"keys=1", "commands=1", "failed=1", "maxCommand=1s"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, want it to contain %q", s, want)
		}
	}
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(5 * time.Millisecond)

	elapsed := timer.Stop()
	if elapsed < 5*time.Millisecond {
		t.Errorf("expected at least 5ms, got %v", elapsed)
	}
	if timer.Elapsed() >= elapsed {
		t.Error("expected Stop() to restart the timer")
	}
}
