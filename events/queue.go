package events

import (
	"sync/atomic"

	"github.com/lixenwraith/fluxfield/engine"
)

// Queue capacity; power of two for mask arithmetic
const (
	QueueSize = 1024
	queueMask = QueueSize - 1
)

// StimulusQueue is a lock-free MPSC ring buffer bridging concurrent stimulus
// producers (input threads, audio analysis callbacks, tracking pipelines) to
// the single-writer-per-frame discipline the engine requires
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK
//   - Drain: Single consumer (the host frame loop, before Update)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest stimuli overwritten when full; influence injection is
// additive and decaying, so dropped stale samples only soften the response
type StimulusQueue struct {
	events    [QueueSize]Stimulus
	published [QueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64          // Read index
	tail      atomic.Uint64          // Write index
}

func NewStimulusQueue() *StimulusQueue {
	q := &StimulusQueue{}
	q.head.Store(0)
	q.tail.Store(0)
	return q
}

// Push adds a stimulus using lock-free CAS with published flags
// Safe for concurrent producers. O(1) amortized
func (q *StimulusQueue) Push(s Stimulus) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & queueMask

			q.events[idx] = s
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread stimuli
			currentHead := q.head.Load()
			if nextTail-currentHead > QueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-QueueSize)
			}
			return
		}
	}
}

// Consume returns all pending stimuli in FIFO order and advances head
// Single-consumer design. Checks published flags for safety
func (q *StimulusQueue) Consume() []Stimulus {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > QueueSize {
			maxAvailable = QueueSize
			currentHead = currentTail - QueueSize
		}

		result := make([]Stimulus, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & queueMask

			if !q.published[idx].Load() {
				break // Writer incomplete
			}

			result = append(result, q.events[idx])
			q.published[idx].Store(false)
		}

		newHead := currentHead + uint64(len(result))
		if q.head.CompareAndSwap(currentHead, newHead) {
			if len(result) == 0 {
				return nil
			}
			return result
		}
	}
}

// Drain consumes all pending stimuli and injects them into the engine
// Call from the frame loop before engine.Update; returns the count applied
func (q *StimulusQueue) Drain(e *engine.Engine) int {
	pending := q.Consume()
	for _, s := range pending {
		s.Apply(e)
	}
	return len(pending)
}
