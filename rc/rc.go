package rc

import (
	"fmt"

	"cellbox/cell"
)

// allocation is the heap block shared by every handle: the wrapped
// value next to the number of live handles. It is reachable only
// through an Rc and is owned collectively by all of them; the
// longest-lived handle decides when it is released.
type allocation[T any] struct {
	value      T
	liveCount  cell.Cell[int]
	destructor func()
}

// Rc is a shared-ownership pointer; handles created through Clone()
// always refer to the same allocation, and the allocation is
// released exactly once, at the moment the last handle is dropped.
// Rc never provides mutable access to the wrapped value: once a
// value is shared, exclusivity cannot be guaranteed anymore, so
// mutability, when needed, must come from wrapping the value in a
// refcell.RefCell.
// The live count is not atomic; an Rc must never be handed to
// another thread while any handle is live.
// *Note*: copies made by plain assignment do not register in the
// live count; always copy a handle with Clone().
type Rc[T any] struct {
	inner *allocation[T]
}

// New() allocates 'value' next to a live count of 1 and returns the
// first handle.
func New[T any](value T) Rc[T] {
	return NewWithDestructor(value, nil)
}

// NewWithDestructor() behaves like New(), and additionally registers
// a 'destructor' to be invoked exactly once, at the moment the
// allocation is released.
func NewWithDestructor[T any](value T, destructor func()) Rc[T] {
	inner := &allocation[T]{
		value:      value,
		liveCount:  cell.New(1),
		destructor: destructor,
	}

	return Rc[T]{inner: inner}
}

// Clone() registers one more live handle and returns it; the new
// handle refers to the same allocation as this one;
// Clone *panics* if:
// 1: the handle is dead, or was never created through New().
func (this Rc[T]) Clone() Rc[T] {
	if this.IsDead() {
		panic("Invalid state: handle is dead.")
	}

	liveCount := this.inner.liveCount
	liveCount.Set(liveCount.Get() + 1)

	return Rc[T]{inner: this.inner}
}

// Get() returns a copy of the wrapped value; the allocation is
// guaranteed live for as long as this handle is;
// Get *panics* if:
// 1: the handle is dead, or was never created through New().
func (this Rc[T]) Get() T {
	if this.IsDead() {
		panic("Invalid state: handle is dead.")
	}

	return this.inner.value
}

// Use() passes a copy of the wrapped value to 'continuation'; access
// is always by value, which is what keeps shared handles read-only;
// Use() never calls 'continuation' if the handle is dead.
func (this Rc[T]) Use(continuation func(T)) {
	if !this.IsDead() {
		continuation(this.inner.value)
	}
}

// Drop() releases this handle; when it is the last live one, the
// allocation is released with it: the live count reaches zero, the
// destructor (if any) runs, and the backing block becomes
// unreachable;
// Drop *panics* if:
// 1: the handle was already dropped.
func (this *Rc[T]) Drop() {
	if this.IsDead() {
		panic("Invalid state: handle is dead.")
	}

	inner := this.inner
	this.inner = nil

	liveCount := inner.liveCount.Get()
	if liveCount == 1 {
		inner.liveCount.Set(0)
		if inner.destructor != nil {
			inner.destructor()
		}
	} else {
		inner.liveCount.Set(liveCount - 1)
	}
}

// IsAlive() returns true while the handle has not been dropped.
func (this Rc[T]) IsAlive() bool {
	return this.inner != nil
}

// IsDead() returns true once the handle has been dropped, meaning it
// cannot be used anymore.
func (this Rc[T]) IsDead() bool {
	return this.inner == nil
}

func (this Rc[T]) String() string {
	if this.IsDead() {
		return "Rc(dead)"
	}

	return fmt.Sprintf("Rc(%v)", this.inner.value)
}
