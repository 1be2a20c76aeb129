// Package decisionlog keeps the append-only record of incident-handling
// decisions. The log is bounded and process-lifetime only: entries do not
// survive a restart. That is a deliberate design choice — the audit trail
// covers the current session, not long-term compliance storage.
package decisionlog

import (
	"fmt"
	"sync"
	"time"

	"github.com/balasus1/chain-guard-tambo/pkg/types"
)

const DefaultCapacity = 100

// Log is a size-bounded FIFO of decision entries. Safe for concurrent use;
// appends never interleave and ids never repeat.
type Log struct {
	mu       sync.Mutex
	entries  []types.DecisionLogEntry
	capacity int
	seq      uint64
	now      func() time.Time
}

type Option func(*Log)

// WithClock overrides the timestamp source, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// New creates a log holding at most capacity entries; once full, the oldest
// entry is evicted on append. Non-positive capacity falls back to the
// default.
func New(capacity int, opts ...Option) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	l := &Log{
		capacity: capacity,
		now:      func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Draft is a decision entry before the log assigns its id and timestamp.
type Draft struct {
	TrackingNumber       string
	CourierCode          string
	AuditResult          types.AuditSummary
	RequestedActions     []types.ActionType
	Outcomes             []types.ActionOutcome
	PolicyRulesEvaluated []string
}

// Append assigns a monotonically increasing, process-unique id plus a
// timestamp, stores the entry, and evicts the oldest once over capacity.
func (l *Log) Append(draft Draft) types.DecisionLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.seq++
	now := l.now()
	entry := types.DecisionLogEntry{
		ID:                   fmt.Sprintf("dec-%d-%d", now.UnixMilli(), l.seq),
		Timestamp:            now,
		TrackingNumber:       draft.TrackingNumber,
		CourierCode:          draft.CourierCode,
		AuditResult:          draft.AuditResult,
		RequestedActions:     draft.RequestedActions,
		Outcomes:             draft.Outcomes,
		PolicyRulesEvaluated: draft.PolicyRulesEvaluated,
	}

	l.entries = append(l.entries, entry)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[1:]
	}
	return entry
}

// LastN returns up to limit entries, most recent first.
func (l *Log) LastN(limit int) []types.DecisionLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 {
		return nil
	}
	if limit > len(l.entries) {
		limit = len(l.entries)
	}
	out := make([]types.DecisionLogEntry, 0, limit)
	for i := len(l.entries) - 1; i >= len(l.entries)-limit; i-- {
		out = append(out, l.entries[i])
	}
	return out
}

// All returns every retained entry, oldest first. Debug aid.
func (l *Log) All() []types.DecisionLogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]types.DecisionLogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
