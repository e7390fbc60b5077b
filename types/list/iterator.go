package list

// Iterator with ability to validate himself when current node is removed from list.
// Only the current node may be removed while iterating.
type Iterator[T comparable] struct {
	list    *List[T]
	started bool
	done    bool // set once Next returned false
	prev    *Node[T]
	current *Node[T]
	next    *Node[T]
}

// Creates iterator. Iterator is not valid until Next() call.
func NewIterator[T comparable](list *List[T]) Iterator[T] {
	return Iterator[T]{
		list: list,
	}
}

func (it *Iterator[T]) Current() *Node[T] {
	return it.current
}

func (it *Iterator[T]) Next() bool {
	if it.done {
		return false
	}

	// 1. start iteration
	if !it.started {
		it.started = true
		it.current = it.list.head
	} else // 2. check first node is removed
	if it.prev == nil && it.current != it.list.head {
		it.current = it.list.head
	} else // 3. check middle node is removed
	if it.prev != nil && it.prev.next != it.current {
		it.current = it.prev.next
	} else { // 4. no changes in list
		it.prev = it.current
		it.current = it.next
	}

	if it.current == nil {
		it.done = true
		return false
	}
	it.next = it.current.next
	return true
}

func (it *Iterator[T]) Valid() bool {
	return it.current != nil
}
