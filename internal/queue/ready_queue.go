package queue

import (
	"errors"
	"fmt"
	"sort"

	"github.com/nafemage/OSProject2/internal/core"
)

var (
	ErrEmptyQueue      = errors.New("ready queue is empty")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNilBlock        = errors.New("nil process control block")
)

// ReadyQueue is an ordered sequence of process control blocks. A block is
// owned by exactly one queue at a time: PopFront and Remove hand it over to
// the caller, who moves it on with PushBack or InsertSorted.
type ReadyQueue struct {
	items []*core.ProcessControlBlock
}

func New(capacity int) *ReadyQueue {
	if capacity < 0 {
		capacity = 0
	}
	return &ReadyQueue{items: make([]*core.ProcessControlBlock, 0, capacity)}
}

// FromBlocks builds a queue holding blocks in the given order.
func FromBlocks(blocks ...*core.ProcessControlBlock) (*ReadyQueue, error) {
	q := New(len(blocks))
	for _, block := range blocks {
		if err := q.PushBack(block); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (q *ReadyQueue) Size() int {
	return len(q.items)
}

func (q *ReadyQueue) Empty() bool {
	return len(q.items) == 0
}

// At returns the block at index, or nil when index is out of range.
func (q *ReadyQueue) At(index int) *core.ProcessControlBlock {
	if index < 0 || index >= len(q.items) {
		return nil
	}
	return q.items[index]
}

func (q *ReadyQueue) Front() *core.ProcessControlBlock {
	return q.At(0)
}

func (q *ReadyQueue) PushBack(block *core.ProcessControlBlock) error {
	if block == nil {
		return ErrNilBlock
	}
	q.items = append(q.items, block)
	return nil
}

func (q *ReadyQueue) PopFront() (*core.ProcessControlBlock, error) {
	if len(q.items) == 0 {
		return nil, ErrEmptyQueue
	}
	block := q.items[0]
	q.items[0] = nil
	q.items = q.items[1:]
	return block, nil
}

// Remove takes the block at index out of the queue and returns it.
func (q *ReadyQueue) Remove(index int) (*core.ProcessControlBlock, error) {
	if index < 0 || index >= len(q.items) {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	block := q.items[index]
	copy(q.items[index:], q.items[index+1:])
	q.items[len(q.items)-1] = nil
	q.items = q.items[:len(q.items)-1]
	return block, nil
}

// Erase drops the block at index.
func (q *ReadyQueue) Erase(index int) error {
	_, err := q.Remove(index)
	return err
}

// InsertSorted places block after every element that does not sort after it,
// so equal elements keep their insertion order.
func (q *ReadyQueue) InsertSorted(block *core.ProcessControlBlock, ordering Ordering) error {
	if block == nil {
		return ErrNilBlock
	}
	index := sort.Search(len(q.items), func(i int) bool {
		return ordering.Less(block, q.items[i])
	})
	q.items = append(q.items, nil)
	copy(q.items[index+1:], q.items[index:])
	q.items[index] = block
	return nil
}

// Sort orders the queue in place; equal elements keep their relative order.
func (q *ReadyQueue) Sort(ordering Ordering) {
	sort.SliceStable(q.items, func(i, j int) bool {
		return ordering.Less(q.items[i], q.items[j])
	})
}

// Clone returns a queue of deep copies, so the copy can be consumed by a
// scheduler without touching the original blocks.
func (q *ReadyQueue) Clone() *ReadyQueue {
	clone := New(len(q.items))
	for _, block := range q.items {
		copied := *block
		clone.items = append(clone.items, &copied)
	}
	return clone
}

// Blocks returns a copy of the slice of blocks currently held.
func (q *ReadyQueue) Blocks() []*core.ProcessControlBlock {
	blocks := make([]*core.ProcessControlBlock, len(q.items))
	copy(blocks, q.items)
	return blocks
}

func (q *ReadyQueue) Clear() {
	for i := range q.items {
		q.items[i] = nil
	}
	q.items = q.items[:0]
}
