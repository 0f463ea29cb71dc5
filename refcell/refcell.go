package refcell

import (
	"fmt"

	"cellbox/cell"
)

// RefCell is a runtime-checked borrow cell: it hands out shared or
// exclusive guards to its value and denies any combination that
// would let an exclusive claim alias another claim. Copies of a
// RefCell always refer to the same value slot and the same borrow
// state.
// This is the classic single-writer-or-multiple-readers discipline,
// enforced at runtime instead of at compile time: a borrow that
// would break the rules is denied, not a compile error, so callers
// are expected to check and handle denial.
// A RefCell must never be handed to another thread while in use.
type RefCell[T any] struct {
	slot  *T
	state cell.Cell[BorrowState]
}

// New() creates a RefCell holding 'value', with no claim on it.
func New[T any](value T) RefCell[T] {
	return RefCell[T]{
		slot:  &value,
		state: cell.New(unshared()),
	}
}

// Borrow() attempts to take a shared claim on the value; any number
// of shared claims may be live at once, but none while the exclusive
// claim is out;
// The second return value reports whether the borrow was granted; a
// denied borrow is an expected condition, not a fault.
func (this RefCell[T]) Borrow() (Ref[T], bool) {
	state := this.state.Get()

	switch state.Kind {
	case Unshared:
		this.state.Set(shared(1))
	case Shared:
		this.state.Set(shared(state.Count + 1))
	default:
		return Ref[T]{}, false
	}

	released := false
	return Ref[T]{refcell: this, released: &released}, true
}

// BorrowMut() attempts to take the exclusive claim on the value; it
// is granted only while no other guard of any kind is live;
// The second return value reports whether the borrow was granted.
func (this RefCell[T]) BorrowMut() (RefMut[T], bool) {
	state := this.state.Get()
	if state.Kind != Unshared {
		return RefMut[T]{}, false
	}

	this.state.Set(exclusive())

	released := false
	return RefMut[T]{refcell: this, released: &released}, true
}

// State() returns the current borrow state; it mirrors exactly the
// count and kind of the guards currently live.
func (this RefCell[T]) State() BorrowState {
	return this.state.Get()
}

func (this RefCell[T]) String() string {
	return fmt.Sprintf("RefCell(%v, %v)", *this.slot, this.state.Get())
}
