package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics counts what a session did and how long it took.
type Metrics struct {
	// Key handling
	keyCount     atomic.Uint64
	keyTotalNs   atomic.Int64
	inputIgnored atomic.Uint64

	// Prompt redraws
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64

	// Commands
	commandCount   atomic.Uint64
	commandTotalNs atomic.Int64
	commandMaxNs   atomic.Int64
	commandFailed  atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordKey records the time taken to apply one key.
func (m *Metrics) RecordKey(duration time.Duration) {
	m.keyCount.Add(1)
	m.keyTotalNs.Add(duration.Nanoseconds())
}

// RecordIgnoredInput records input that decoded to no key.
func (m *Metrics) RecordIgnoredInput() {
	m.inputIgnored.Add(1)
}

// RecordRender records the time taken to draw the prompt line.
func (m *Metrics) RecordRender(duration time.Duration) {
	m.renderCount.Add(1)
	m.renderTotalNs.Add(duration.Nanoseconds())
}

// RecordCommand records a finished command. failed means the program
// could not be started.
func (m *Metrics) RecordCommand(duration time.Duration, failed bool) {
	ns := duration.Nanoseconds()
	m.commandCount.Add(1)
	m.commandTotalNs.Add(ns)
	if failed {
		m.commandFailed.Add(1)
	}

	for {
		old := m.commandMaxNs.Load()
		if ns <= old {
			break
		}
		if m.commandMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	keys := m.keyCount.Load()
	renders := m.renderCount.Load()
	commands := m.commandCount.Load()

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		KeyCount:       keys,
		AvgKeyNs:       average(m.keyTotalNs.Load(), keys),
		InputIgnored:   m.inputIgnored.Load(),
		RenderCount:    renders,
		AvgRenderNs:    average(m.renderTotalNs.Load(), renders),
		CommandCount:   commands,
		AvgCommandNs:   average(m.commandTotalNs.Load(), commands),
		MaxCommandNs:   m.commandMaxNs.Load(),
		CommandsFailed: m.commandFailed.Load(),
	}
}

func average(total int64, n uint64) int64 {
	if n == 0 {
		return 0
	}
	return total / int64(n)
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	KeyCount       uint64
	AvgKeyNs       int64
	InputIgnored   uint64
	RenderCount    uint64
	AvgRenderNs    int64
	CommandCount   uint64
	AvgCommandNs   int64
	MaxCommandNs   int64
	CommandsFailed uint64
}

// String formats the snapshot for the session log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s keys=%d ignored=%d renders=%d avgRender=%s commands=%d failed=%d maxCommand=%s",
		s.Uptime.Round(time.Second), s.KeyCount, s.InputIgnored, s.RenderCount,
		time.Duration(s.AvgRenderNs), s.CommandCount, s.CommandsFailed, time.Duration(s.MaxCommandNs))
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop returns the elapsed time and resets the timer.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.start = time.Now()
	return elapsed
}

// Metrics returns the session's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}
