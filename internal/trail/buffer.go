// Package trail keeps a short, fixed-length history of body positions.
//
// Index 0 is the most recent position. Slots that have not been written yet
// hold [Sentinel], a value no simulated body can reach.
package trail

import "github.com/san-kum/threebody/internal/dynamo"

// Sentinel marks an empty slot. The orbit never leaves roughly
// [-1.2, 1.2] in either axis.
var Sentinel = dynamo.Vec2{X: -99999, Y: -99999}

// IsSentinel reports whether p is the empty marker.
func IsSentinel(p dynamo.Vec2) bool {
	return p == Sentinel
}

// Buffer is a fixed-capacity position history.
type Buffer struct {
	data []dynamo.Vec2
}

// New returns a buffer just large enough for every index in set.
func New(set IndexSet) *Buffer {
	return NewWithCapacity(set.Capacity())
}

func NewWithCapacity(n int) *Buffer {
	if n < 1 {
		n = 1
	}
	b := &Buffer{data: make([]dynamo.Vec2, n)}
	b.Reset()
	return b
}

// Record shifts every entry one slot toward the tail, dropping the oldest,
// and stores p at index 0.
func (b *Buffer) Record(p dynamo.Vec2) {
	copy(b.data[1:], b.data[:len(b.data)-1])
	b.data[0] = p
}

// SampleAt returns the entry at i. ok is false when i is out of range; an
// in-range entry may still be the Sentinel.
func (b *Buffer) SampleAt(i int) (p dynamo.Vec2, ok bool) {
	if i < 0 || i >= len(b.data) {
		return dynamo.Vec2{}, false
	}
	return b.data[i], true
}

func (b *Buffer) Cap() int { return len(b.data) }

// Len returns the number of recorded (non-sentinel) entries.
func (b *Buffer) Len() int {
	n := 0
	for _, p := range b.data {
		if !IsSentinel(p) {
			n++
		}
	}
	return n
}

// Reset fills every slot with the Sentinel.
func (b *Buffer) Reset() {
	for i := range b.data {
		b.data[i] = Sentinel
	}
}

func (b *Buffer) Clone() *Buffer {
	c := &Buffer{data: make([]dynamo.Vec2, len(b.data))}
	copy(c.data, b.data)
	return c
}

// Samples calls fn for every index in set that holds a recorded position.
// Sentinel and out-of-range entries are skipped.
func (b *Buffer) Samples(set IndexSet, fn func(i int, p dynamo.Vec2)) {
	for _, i := range set {
		p, ok := b.SampleAt(i)
		if !ok || IsSentinel(p) {
			continue
		}
		fn(i, p)
	}
}
