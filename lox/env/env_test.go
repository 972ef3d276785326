package env

import (
	"errors"
	"testing"

	"github.com/jesperkha/lox/lox/value"
)

func tassert(t *testing.T, v bool, f string, args ...any) {
	t.Helper()
	if !v {
		t.Errorf(f, args...)
		t.FailNow()
	}
}

func get(t *testing.T, e *Environment, name string) value.Value {
	t.Helper()
	v, err := e.Get(name)
	tassert(t, err == nil, "get %s: %s", name, err)
	return v
}

func TestDefineAndGet(t *testing.T) {
	e := New()
	tassert(t, e.Define("a", value.Number(1)) == nil, "expected define to succeed")
	tassert(t, get(t, e, "a") == value.Number(1), "expected a=1")

	_, err := e.Get("b")
	tassert(t, errors.Is(err, ErrUndefined), "expected undefined, got %v", err)
}

func TestRedefineSameScope(t *testing.T) {
	e := New()
	e.Define("a", value.Number(1))

	err := e.Define("a", value.Number(2))
	tassert(t, errors.Is(err, ErrAlreadyDefined), "expected already defined, got %v", err)

	var envErr *Error
	tassert(t, errors.As(err, &envErr) && envErr.Name == "a", "expected error for a, got %v", err)
	tassert(t, get(t, e, "a") == value.Number(1), "expected value to be unchanged")
}

func TestShadowing(t *testing.T) {
	e := New()
	e.Define("a", value.Number(1))

	e.Push()
	tassert(t, e.Define("a", value.String("inner")) == nil, "expected shadowing to be allowed")
	tassert(t, get(t, e, "a") == value.String("inner"), "expected inner value")

	tassert(t, e.Pop() == nil, "expected pop to succeed")
	tassert(t, get(t, e, "a") == value.Number(1), "expected outer value after pop")
}

func TestAssignWalksOutward(t *testing.T) {
	e := New()
	e.Define("a", value.Number(1))
	e.Push()
	e.Push()

	tassert(t, e.Assign("a", value.Number(5)) == nil, "expected assign to succeed")
	tassert(t, e.Depth() == 2, "expected depth 2, got %d", e.Depth())

	e.Pop()
	e.Pop()
	tassert(t, get(t, e, "a") == value.Number(5), "expected global to be mutated")

	err := e.Assign("missing", value.Nil{})
	tassert(t, errors.Is(err, ErrUndefined), "expected undefined, got %v", err)
}

func TestAssignInnermost(t *testing.T) {
	e := New()
	e.Define("a", value.Number(1))
	e.Push()
	e.Define("a", value.Number(2))

	e.Assign("a", value.Number(3))
	tassert(t, get(t, e, "a") == value.Number(3), "expected inner value mutated")

	e.Pop()
	tassert(t, get(t, e, "a") == value.Number(1), "expected outer value untouched")
}

func TestPopDiscardsScope(t *testing.T) {
	e := New()
	e.Push()
	e.Define("tmp", value.Bool(true))
	e.Pop()

	_, err := e.Get("tmp")
	tassert(t, errors.Is(err, ErrUndefined), "expected variable gone after pop, got %v", err)

	// A fresh scope at the same depth starts empty.
	e.Push()
	tassert(t, e.Define("tmp", value.Bool(false)) == nil, "expected define in new scope")
}

func TestPopGlobal(t *testing.T) {
	e := New()
	tassert(t, errors.Is(e.Pop(), ErrExitGlobal), "expected exit global error")
	tassert(t, e.Depth() == 0, "expected to remain in global scope")

	e.Push()
	tassert(t, e.Pop() == nil, "expected pop to succeed")
	tassert(t, errors.Is(e.Pop(), ErrExitGlobal), "expected exit global error")
}

func TestErrorMessage(t *testing.T) {
	err := New().Assign("x", value.Nil{})
	tassert(t, err.Error() == "undefined variable 'x'", "bad message %q", err.Error())
}
