package refcell

import "fmt"

// BorrowKind is the discriminant of a BorrowState.
type BorrowKind uint8

const (
	// Unshared indicates no live guard.
	Unshared BorrowKind = iota
	// Shared indicates one or more live shared guards.
	Shared
	// Exclusive indicates a single live exclusive guard.
	Exclusive
)

func (this BorrowKind) String() string {
	switch this {
	case Unshared:
		return "Unshared"
	case Shared:
		return "Shared"
	case Exclusive:
		return "Exclusive"
	default:
		return "?"
	}
}

// BorrowState is the aggregate claim currently held on a RefCell's
// value: no claim, Count shared claims, or one exclusive claim;
// Count is meaningful only while Kind is Shared, and is then at
// least 1.
type BorrowState struct {
	Kind  BorrowKind
	Count int
}

func (this BorrowState) String() string {
	if this.Kind == Shared {
		return fmt.Sprintf("Shared(%d)", this.Count)
	}

	return this.Kind.String()
}

func unshared() BorrowState {
	return BorrowState{Kind: Unshared}
}

func shared(count int) BorrowState {
	return BorrowState{Kind: Shared, Count: count}
}

func exclusive() BorrowState {
	return BorrowState{Kind: Exclusive}
}
