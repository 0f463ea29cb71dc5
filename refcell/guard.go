package refcell

// Ref is a shared-borrow guard: proof that one shared claim on a
// RefCell's value is registered in its borrow state. A Ref gives
// read-only, by-value access, and must be released with Drop()
// before the cell can hand out the exclusive guard again.
type Ref[T any] struct {
	refcell  RefCell[T]
	released *bool
}

// Get() returns a copy of the borrowed value;
// Get *panics* if:
// 1: the guard was already dropped.
func (this Ref[T]) Get() T {
	if *this.released {
		panic("Invalid state: guard was already dropped.")
	}

	return *this.refcell.slot
}

// Use() passes a copy of the borrowed value to 'continuation'; the
// copy is what keeps a shared claim unable to mutate.
func (this Ref[T]) Use(continuation func(T)) {
	continuation(this.Get())
}

// Drop() releases the shared claim;
// Drop *panics* if:
// 1: the guard was already dropped;
// 2: the cell's borrow state does not record a shared claim — that
// can only mean the bookkeeping was corrupted, and continuing would
// let conflicting guards coexist.
func (this Ref[T]) Drop() {
	if *this.released {
		panic("Invalid state: guard was already dropped.")
	}
	*this.released = true

	state := this.refcell.state.Get()
	if state.Kind != Shared {
		panic("Invalid state: shared guard released while " + state.String() + ".")
	}

	if state.Count > 1 {
		this.refcell.state.Set(shared(state.Count - 1))
	} else {
		this.refcell.state.Set(unshared())
	}
}

// RefMut is an exclusive-borrow guard: proof that the one exclusive
// claim on a RefCell's value is registered in its borrow state.
// While a RefMut is live no other guard of any kind exists, which is
// what makes mutation through it sound.
type RefMut[T any] struct {
	refcell  RefCell[T]
	released *bool
}

// Get() returns a copy of the borrowed value;
// Get *panics* if:
// 1: the guard was already dropped.
func (this RefMut[T]) Get() T {
	if *this.released {
		panic("Invalid state: guard was already dropped.")
	}

	return *this.refcell.slot
}

// Set() overwrites the borrowed value;
// Set *panics* if:
// 1: the guard was already dropped.
func (this RefMut[T]) Set(value T) {
	if *this.released {
		panic("Invalid state: guard was already dropped.")
	}

	*this.refcell.slot = value
}

// Use() passes the borrowed value to 'continuation' by pointer,
// allowing in-place mutation;
// Use *panics* if:
// 1: the guard was already dropped.
func (this RefMut[T]) Use(continuation func(*T)) {
	if *this.released {
		panic("Invalid state: guard was already dropped.")
	}

	continuation(this.refcell.slot)
}

// Drop() releases the exclusive claim;
// Drop *panics* if:
// 1: the guard was already dropped;
// 2: the cell's borrow state does not record the exclusive claim —
// that can only mean the bookkeeping was corrupted, and continuing
// would let conflicting guards coexist.
func (this RefMut[T]) Drop() {
	if *this.released {
		panic("Invalid state: guard was already dropped.")
	}
	*this.released = true

	state := this.refcell.state.Get()
	if state.Kind != Exclusive {
		panic("Invalid state: exclusive guard released while " + state.String() + ".")
	}

	this.refcell.state.Set(unshared())
}
