package store

import (
	"sync"

	"medtrack/internal/medication"
)

// Subscription is a live view of all records ordered by name.
// Its mailbox holds one snapshot: a reader that falls behind skips to the
// newest list but never sees an older list after a newer one.
type Subscription struct {
	id        uint64
	store     *RecordStore
	updates   chan []medication.Record
	done      chan struct{}
	closeOnce sync.Once
}

// Updates returns the channel of snapshots. It is closed by Close.
func (s *Subscription) Updates() <-chan []medication.Record {
	return s.updates
}

// Close ends the subscription. It is safe to call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.store.unsubscribe(s)
	})
}

// deliver replaces any pending snapshot with a copy of records.
// Callers hold store.mu, so deliver is the only sender and never blocks.
func (s *Subscription) deliver(records []medication.Record) {
	snapshot := make([]medication.Record, len(records))
	copy(snapshot, records)

	select {
	case <-s.updates:
	default:
	}
	s.updates <- snapshot
}
