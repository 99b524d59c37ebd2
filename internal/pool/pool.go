// Package pool wraps sync.Pool with a typed API. Used by fuzzy for the
// edit-distance rows computed on every suggestion.
package pool

import "sync"

// Pool is a typed sync.Pool.
type Pool[T any] struct {
	pool  sync.Pool
	reset func(*T) // called on every Get, fresh objects included
}

// New creates a pool whose empty slots are filled by factory.
func New[T any](factory func() *T) *Pool[T] {
	return &Pool[T]{pool: sync.Pool{New: func() any { return factory() }}}
}

// NewWithReset creates a pool that passes every object to reset before
// handing it out.
func NewWithReset[T any](factory func() *T, reset func(*T)) *Pool[T] {
	p := New(factory)
	p.reset = reset
	return p
}

// Get returns a pooled or freshly built object.
func (p *Pool[T]) Get() *T {
	obj := p.pool.Get().(*T)
	if p.reset != nil {
		p.reset(obj)
	}
	return obj
}

// Put makes obj available again. Nil is ignored.
func (p *Pool[T]) Put(obj *T) {
	if obj == nil {
		return
	}
	p.pool.Put(obj)
}

// maxPooledInts bounds the capacity kept by the int slice pool.
const maxPooledInts = 256

var ints = NewWithReset(
	func() *[]int {
		s := make([]int, 0, 32)
		return &s
	},
	func(s *[]int) { *s = (*s)[:0] },
)

// Ints returns a zeroed int slice of length n. Return it with PutInts.
func Ints(n int) *[]int {
	s := ints.Get()
	if cap(*s) < n {
		*s = make([]int, n)
		return s
	}
	*s = (*s)[:n]
	clear(*s)
	return s
}

// PutInts returns a slice obtained from Ints. Oversized slices are dropped.
func PutInts(s *[]int) {
	if s == nil || cap(*s) > maxPooledInts {
		return
	}
	ints.Put(s)
}
