package list

import (
	"fmt"
)

// Node is a list node holding a single value.
//
// The forward link is the only one that keeps the chain reachable from the list head.
// The backward link is used for lookups during removal only.
type Node[T comparable] struct {
	Value T
	next  *Node[T]
	prev  *Node[T]
	list  *List[T] // list the node belongs to, nil once removed
}

func newNode[T comparable](v T) *Node[T] {
	return &Node[T]{Value: v}
}

// Next returns the next node or nil if n is the tail of its list.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Previous returns the previous node or nil if n is the head of its list.
func (n *Node[T]) Previous() *Node[T] {
	return n.prev
}

// String renders the node value and only the presence of its links,
// so printing a node never walks the chain.
func (n *Node[T]) String() string {
	return fmt.Sprintf("Node{Value: %v, Next: %s, Previous: %s}",
		n.Value, presence(n.next != nil), presence(n.prev != nil))
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "absent"
}
