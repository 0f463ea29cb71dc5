package cell

import (
	"fmt"
	"reflect"
)

// Cell is a single-owner mutable cell; copies of a Cell always refer
// to the same value slot, so a mutation through any copy is visible
// through all copies.
// The value never leaves the cell by reference: Get() and Set() move
// copies in and out, which is what makes mutation through a shared
// handle safe — no live reference to the interior can alias a later
// write.
// A Cell must never be handed to another thread while live.
type Cell[T any] struct {
	slot  *T
	name  *string
	group *Group[T]
}

// New() creates a new Cell holding 'value';
// New *panics* if:
// 1: a pointer is provided as its value.
func New[T any](value T) Cell[T] {
	// Prevent pointers during runtime.
	reflectedValue := reflect.ValueOf(value)
	if reflectedValue.Kind() == reflect.Ptr {
		panic("Invalid state: pointer was provided.")
	}

	return Cell[T]{slot: &value}
}

// Get() returns a copy of the current value.
func (this Cell[T]) Get() T {
	return *this.slot
}

// Set() overwrites the stored value; the mutation is observable
// through every copy of this Cell.
func (this Cell[T]) Set(value T) {
	previous := *this.slot
	*this.slot = value
	this.doReadWrite(&previous, this.slot)
}

// Swap() exchanges the contents of two cells in place;
// If both cells target the same slot, Swap has no effect; identity is
// decided by the slot's address, never by the stored values, so a
// copy of this Cell counts as the same cell.
func (this Cell[T]) Swap(other Cell[T]) {
	if this.slot == other.slot {
		return
	}

	previous := *this.slot
	otherPrevious := *other.slot

	*this.slot, *other.slot = *other.slot, *this.slot

	this.doReadWrite(&previous, this.slot)
	other.doReadWrite(&otherPrevious, other.slot)
}

// Replace() stores 'value' and returns the value previously held.
func (this Cell[T]) Replace(value T) T {
	previous := *this.slot
	*this.slot = value
	this.doReadWrite(&previous, this.slot)
	return previous
}

// Take() replaces the stored value with the zero value of T and
// returns the value previously held.
func (this Cell[T]) Take() T {
	var zero T
	return this.Replace(zero)
}

func (this Cell[T]) String() string {
	return fmt.Sprintf("Cell(%v)", *this.slot)
}

func (this Cell[T]) doReadWrite(previous *T, current *T) {
	if this.group != nil && this.name != nil {
		this.group.doReadWrite(*this.name, previous, current)
	}
}
