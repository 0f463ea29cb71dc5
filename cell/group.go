package cell

// ReadWriteEvent represents the information associated with a
// read-write event within a Group;
// It includes details such as the group name, Cell name, previous
// value, and current value involved in the event.
type ReadWriteEvent[T any] struct {
	GroupName string
	CellName  string
	Previous  *T
	Current   *T
}

// Group represents a collection of Cell instances that are
// associated and can be observed together;
// It allows the creation of named Cell instances within the group,
// and provides a mechanism to set a callback function to be invoked
// on every read-write operation within the group.
type Group[T any] struct {
	name        string
	onReadWrite func(ReadWriteEvent[T])
}

func NewGroup[T any](name string) Group[T] {
	return Group[T]{
		name: name,
	}
}

func (this *Group[T]) New(name string, value T) Cell[T] {
	instance := New(value)
	instance.name = &name
	instance.group = this
	return instance
}

// OnReadWrite sets a callback function to be invoked on every
// read-write operation within the Group.
func (this *Group[T]) OnReadWrite(callback func(ReadWriteEvent[T])) {
	this.onReadWrite = callback
}

// doReadWrite invokes the OnReadWrite callback function, if set, with
// the information about a read-write event within the Group;
// It provides details such as the group name, Cell name, previous
// value, and current value;
// If no callback is set, this method has no effect.
func (this *Group[T]) doReadWrite(name string, previous *T, current *T) {
	if this.onReadWrite != nil {
		event := ReadWriteEvent[T]{
			GroupName: this.name,
			CellName:  name,
			Previous:  previous,
			Current:   current,
		}
		this.onReadWrite(event)
	}
}
