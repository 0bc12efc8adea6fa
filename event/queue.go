package event

import (
	"sync/atomic"

	"github.com/lixenwraith/balloon/parameter"
)

// Queue carries input from host goroutines (tcell poll, ebiten Update) to the game loop
//   - Push: any number of producers, a CAS on tail reserves the slot
//   - Consume: the loop goroutine only
//   - A slot is readable once its published flag is set
//
// When more than InputQueueSize inputs are pending the oldest are overwritten
// and counted in Dropped
type Queue struct {
	events    [parameter.InputQueueSize]Input
	published [parameter.InputQueueSize]atomic.Bool // True = slot fully written
	head      atomic.Uint64                         // Read index
	tail      atomic.Uint64                         // Write index
	dropped   atomic.Uint64
}

// NewQueue returns an empty queue, the zero Queue is also ready to use
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends one input, never blocks
func (q *Queue) Push(ev Input) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.InputBufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			// Advance head if overwriting unread events
			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.InputQueueSize {
				if q.head.CompareAndSwap(currentHead, nextTail-parameter.InputQueueSize) {
					q.dropped.Add(nextTail - parameter.InputQueueSize - currentHead)
				}
			}
			return
		}
	}
}

// Consume takes every published input in arrival order, stopping at the first
// slot a producer has reserved but not yet written
func (q *Queue) Consume() []Input {
	for {
		currentHead := q.head.Load()
		currentTail := q.tail.Load()

		if currentTail == currentHead {
			return nil
		}

		maxAvailable := currentTail - currentHead
		if maxAvailable > parameter.InputQueueSize {
			maxAvailable = parameter.InputQueueSize
			currentHead = currentTail - parameter.InputQueueSize
		}

		result := make([]Input, 0, maxAvailable)
		for i := uint64(0); i < maxAvailable; i++ {
			idx := (currentHead + i) & parameter.InputBufferMask

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

// Len is a snapshot of pending inputs, capped at InputQueueSize
func (q *Queue) Len() int {
	head := q.head.Load()
	tail := q.tail.Load()
	if tail <= head {
		return 0
	}
	diff := int(tail - head)
	if diff > parameter.InputQueueSize {
		return parameter.InputQueueSize
	}
	return diff
}

// Dropped returns how many events were overwritten before being consumed
func (q *Queue) Dropped() uint64 {
	return q.dropped.Load()
}
