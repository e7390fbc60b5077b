package demo

import (
	"fmt"
	"strings"

	"github.com/tidwall/hashmap"

	"github.com/aodr3w/doubly/types/list"
)

// command executes a single script step against the runner's list.
type command[T comparable] struct {
	minArgs int
	maxArgs int // negative means unbounded
	exec    func(r *Runner[T], args []string) error
}

// Runner drives a list through script steps and reports the outcome of each
// step to the handler.
type Runner[T comparable] struct {
	list     *list.List[T]
	handler  Handler
	parse    Parser[T]
	commands *hashmap.Map[string, command[T]]
	taken    *list.Node[T] // handle kept across steps by "take"
}

// NewRunner creates new Runner instance with an empty list.
func NewRunner[T comparable](handler Handler, parse Parser[T]) *Runner[T] {
	r := &Runner[T]{
		list:     list.NewList[T](),
		handler:  handler,
		parse:    parse,
		commands: hashmap.New[string, command[T]](8),
	}
	r.commands.Set("append", command[T]{minArgs: 1, maxArgs: -1, exec: (*Runner[T]).append})
	r.commands.Set("remove", command[T]{minArgs: 1, maxArgs: 1, exec: (*Runner[T]).removeValue})
	r.commands.Set("remove-all-of", command[T]{minArgs: 1, maxArgs: 1, exec: (*Runner[T]).removeValues})
	r.commands.Set("remove-node", command[T]{minArgs: 1, maxArgs: 1, exec: (*Runner[T]).removeNode})
	r.commands.Set("take", command[T]{minArgs: 1, maxArgs: 1, exec: (*Runner[T]).take})
	r.commands.Set("remove-taken", command[T]{exec: (*Runner[T]).removeTaken})
	r.commands.Set("remove-head", command[T]{exec: (*Runner[T]).removeHead})
	r.commands.Set("remove-tail", command[T]{exec: (*Runner[T]).removeTail})
	r.commands.Set("clear", command[T]{exec: (*Runner[T]).clear})
	r.commands.Set("find", command[T]{minArgs: 1, maxArgs: 1, exec: (*Runner[T]).find})
	return r
}

// List returns the list driven by the runner.
func (r *Runner[T]) List() *list.List[T] {
	return r.list
}

// Run executes semicolon separated steps in order, stopping at the first failing one.
func (r *Runner[T]) Run(script string) error {
	for _, step := range strings.Split(script, ";") {
		if strings.TrimSpace(step) == "" {
			continue
		}
		if err := r.Exec(step); err != nil {
			return err
		}
	}
	return nil
}

// Exec executes a single step such as "append 1 2" or "remove-head".
func (r *Runner[T]) Exec(step string) error {
	fields := strings.Fields(step)
	if len(fields) == 0 {
		return ErrEmptyStep
	}
	name, args := fields[0], fields[1:]

	cmd, ok := r.commands.Get(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("%w: %q takes %s", ErrInvalidArgument, name, arity(cmd.minArgs, cmd.maxArgs))
	}
	return cmd.exec(r, args)
}

func (r *Runner[T]) report(title string) {
	r.handler.OnStep(title, r.list.String(), r.list.Len())
}

func (r *Runner[T]) value(arg string) (T, error) {
	v, err := r.parse(arg)
	if err != nil {
		return v, fmt.Errorf("%w: %q: %w", ErrInvalidArgument, arg, err)
	}
	return v, nil
}

func (r *Runner[T]) values(args []string) ([]T, error) {
	values := make([]T, 0, len(args))
	for _, arg := range args {
		v, err := r.value(arg)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (r *Runner[T]) append(args []string) error {
	// Parse everything first so a bad argument leaves the list untouched
	values, err := r.values(args)
	if err != nil {
		return err
	}
	for _, v := range values {
		r.list.Append(v)
	}
	r.report(fmt.Sprintf("After appending %s:", strings.Join(args, " ")))
	return nil
}

func (r *Runner[T]) removeValue(args []string) error {
	v, err := r.value(args[0])
	if err != nil {
		return err
	}
	r.list.RemoveValue(v)
	r.report(fmt.Sprintf("After removing %s:", args[0]))
	return nil
}

func (r *Runner[T]) removeValues(args []string) error {
	v, err := r.value(args[0])
	if err != nil {
		return err
	}
	r.list.RemoveValues(v)
	r.report(fmt.Sprintf("After removing all %s:", args[0]))
	return nil
}

func (r *Runner[T]) removeNode(args []string) error {
	v, err := r.value(args[0])
	if err != nil {
		return err
	}
	node := r.list.FindFirst(v)
	if node == nil {
		r.handler.OnError("remove-node "+args[0], ErrValueNotFound)
		return nil
	}
	// FindFirst only returns members of the list
	_, _ = r.list.RemoveNode(node)
	r.report(fmt.Sprintf("After removing node %s:", args[0]))
	return nil
}

func (r *Runner[T]) take(args []string) error {
	v, err := r.value(args[0])
	if err != nil {
		return err
	}
	node := r.list.FindFirst(v)
	if node == nil {
		r.handler.OnError("take "+args[0], ErrValueNotFound)
		return nil
	}
	r.taken = node
	return nil
}

// removeTaken removes the node kept by the last take step.
// The handle is kept afterwards, so removing it again is reported as an error.
func (r *Runner[T]) removeTaken(_ []string) error {
	v, err := r.list.RemoveNode(r.taken)
	if err != nil {
		r.handler.OnError("remove-taken", err)
		return nil
	}
	r.report(fmt.Sprintf("After removing taken node %v:", v))
	return nil
}

func (r *Runner[T]) removeHead(_ []string) error {
	r.list.RemoveHead()
	r.report("After removing head:")
	return nil
}

func (r *Runner[T]) removeTail(_ []string) error {
	r.list.RemoveTail()
	r.report("After removing tail:")
	return nil
}

func (r *Runner[T]) clear(_ []string) error {
	r.list.RemoveAll()
	r.report("After removing all elements:")
	return nil
}

func (r *Runner[T]) find(args []string) error {
	v, err := r.value(args[0])
	if err != nil {
		return err
	}
	r.handler.OnFind(args[0], len(r.list.FindAll(v)))
	return nil
}

func arity(lo, hi int) string {
	switch {
	case lo == hi:
		return fmt.Sprintf("%d argument(s)", lo)
	case hi < 0:
		return fmt.Sprintf("at least %d argument(s)", lo)
	default:
		return fmt.Sprintf("%d to %d argument(s)", lo, hi)
	}
}
