// Package env implements the scope chain used to resolve variables at
// runtime.
package env

import (
	"errors"
	"fmt"

	"github.com/jesperkha/lox/lox/value"
)

var (
	ErrAlreadyDefined = errors.New("variable is already defined")
	ErrUndefined      = errors.New("undefined variable")
	ErrExitGlobal     = errors.New("cannot exit global scope")
)

type Error struct {
	Kind error
	Name string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s '%s'", e.Kind, e.Name)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Environment is a chain of scopes stored as an arena of frames. Each frame
// refers to its enclosing frame by index; the global frame has none.
type Environment struct {
	idx    int // Current (innermost) frame
	frames []frame
}

type frame struct {
	vars   map[string]value.Value
	parent int // Index of enclosing frame, -1 for the global frame
}

func New() *Environment {
	e := &Environment{}
	e.frames = append(e.frames, frame{
		vars:   make(map[string]value.Value),
		parent: -1,
	})
	return e
}

// Push enters a new scope enclosed by the current one.
func (e *Environment) Push() {
	e.frames = append(e.frames, frame{
		vars:   make(map[string]value.Value),
		parent: e.idx,
	})
	e.idx = len(e.frames) - 1
}

// Pop exits the current scope, discarding its variables. Returns
// ErrExitGlobal if the current scope is the global one.
func (e *Environment) Pop() error {
	parent := e.frames[e.idx].parent
	if parent < 0 {
		return ErrExitGlobal
	}

	e.frames = e.frames[:e.idx]
	e.idx = parent
	return nil
}

// Depth returns the number of scopes enclosing the current one. Zero means
// the global scope.
func (e *Environment) Depth() int {
	depth := 0
	for i := e.frames[e.idx].parent; i >= 0; i = e.frames[i].parent {
		depth++
	}
	return depth
}

// Define declares name in the current scope. Shadowing a name from an
// enclosing scope is allowed, declaring it twice in the same scope is not.
func (e *Environment) Define(name string, v value.Value) error {
	vars := e.frames[e.idx].vars
	if _, ok := vars[name]; ok {
		return &Error{Kind: ErrAlreadyDefined, Name: name}
	}

	vars[name] = v
	return nil
}

// Assign sets the value of name in the innermost scope that declares it.
func (e *Environment) Assign(name string, v value.Value) error {
	f, ok := e.lookup(name)
	if !ok {
		return &Error{Kind: ErrUndefined, Name: name}
	}

	f.vars[name] = v
	return nil
}

// Get returns the value of name from the innermost scope that declares it.
func (e *Environment) Get(name string) (value.Value, error) {
	f, ok := e.lookup(name)
	if !ok {
		return nil, &Error{Kind: ErrUndefined, Name: name}
	}

	return f.vars[name], nil
}

func (e *Environment) lookup(name string) (*frame, bool) {
	for i := e.idx; i >= 0; i = e.frames[i].parent {
		if _, ok := e.frames[i].vars[name]; ok {
			return &e.frames[i], true
		}
	}
	return nil, false
}
