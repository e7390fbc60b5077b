package list

import (
	"fmt"
	"strings"
)

// List represents a doubly linked list.
//
// Each node links to the node after it and to the node before it. Nodes are
// only ever added at the back; they may be removed from any position.
// The zero value is an empty list ready to use. List is not safe for concurrent use.
type List[T comparable] struct {
	head *Node[T]
	tail *Node[T]
	len  int // number of nodes reachable from head
}

// NewList creates new List instance.
func NewList[T comparable]() *List[T] {
	return new(List[T])
}

// Len returns the number of nodes of list l.
func (l *List[T]) Len() int {
	return l.len
}

// Head returns the first node of list l or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node of list l or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// Append inserts a new node with value v at the back of list l and returns it.
func (l *List[T]) Append(v T) *Node[T] {
	n := newNode(v)
	n.list = l
	if l.head == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		n.prev = l.tail
		l.tail = n
	}
	l.len++
	return n
}

// RemoveNode splices n out of list l and returns its value.
// The node handle must not be reused after a successful removal.
func (l *List[T]) RemoveNode(n *Node[T]) (v T, err error) {
	if n == nil {
		err = ErrorListNodeIsNil
		return
	}
	if n.list != l {
		err = ErrorListNodeIsNotInTheList
		return
	}
	v = n.Value
	l.remove(n)
	return
}

// RemoveValue removes the first node holding v.
// Reports whether a node was removed.
func (l *List[T]) RemoveValue(v T) bool {
	n := l.FindFirst(v)
	if n == nil {
		return false
	}
	l.remove(n)
	return true
}

// RemoveValues removes every node holding v and returns how many were removed.
func (l *List[T]) RemoveValues(v T) int {
	// Matches are collected before any splice happens.
	nodes := l.FindAll(v)
	for _, n := range nodes {
		l.remove(n)
	}
	return len(nodes)
}

// RemoveHead removes the first node of list l.
// Returns false if the list is empty.
func (l *List[T]) RemoveHead() (v T, ok bool) {
	if l.head == nil {
		return
	}
	v = l.head.Value
	l.remove(l.head)
	return v, true
}

// RemoveTail removes the last node of list l.
// Returns false if the list is empty.
func (l *List[T]) RemoveTail() (v T, ok bool) {
	if l.tail == nil {
		return
	}
	v = l.tail.Value
	l.remove(l.tail)
	return v, true
}

// RemoveAll cleans list l by removing all existing nodes.
func (l *List[T]) RemoveAll() {
	// Detach every node so handles held by callers are rejected later.
	for n := l.head; n != nil; {
		next := n.next
		n.next, n.prev, n.list = nil, nil, nil
		n = next
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

// FindFirst returns the first node holding v or nil.
func (l *List[T]) FindFirst(v T) *Node[T] {
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			return n
		}
	}
	return nil
}

// FindAll returns all nodes holding v in head to tail order.
func (l *List[T]) FindAll(v T) []*Node[T] {
	nodes := []*Node[T]{}
	for n := l.head; n != nil; n = n.next {
		if n.Value == v {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// Contains reports whether any node of list l holds v.
func (l *List[T]) Contains(v T) bool {
	return l.FindFirst(v) != nil
}

// Values returns node values in head to tail order.
func (l *List[T]) Values() []T {
	values := make([]T, 0, l.len)
	it := l.Iterator()
	for it.Next() {
		values = append(values, it.Current().Value)
	}
	return values
}

// Iterator creates iterator over list l.
func (l *List[T]) Iterator() Iterator[T] {
	return NewIterator(l)
}

// String renders list l as "1 <-> 2 <-> 3 --> end".
// An empty list renders as an empty string.
func (l *List[T]) String() string {
	if l.head == nil {
		return ""
	}
	var sb strings.Builder
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&sb, "%v", n.Value)
		if n.next != nil {
			sb.WriteString(" <-> ")
		} else {
			sb.WriteString(" --> end")
		}
	}
	return sb.String()
}

// remove splices n out of list l and decrements l.len.
// n must be a node of l.
func (l *List[T]) remove(n *Node[T]) {
	next, prev := n.next, n.prev

	switch {
	case prev == nil && next == nil:
		// The only node
		l.head = nil
		l.tail = nil
	case prev == nil:
		next.prev = nil
		l.head = next
	case next == nil:
		prev.next = nil
		l.tail = prev
	default:
		prev.next = next
		next.prev = prev
	}

	// Clean up removed node to avoid keeping neighbours alive
	// and to reject it on a second removal.
	n.next, n.prev, n.list = nil, nil, nil
	l.len--
}
