package value

import (
	"math"
	"testing"
)

func TestTruthy(t *testing.T) {
	cases := []struct {
		v      Value
		expect bool
	}{
		{Nil{}, false},
		{Bool(false), false},
		{Bool(true), true},
		{Number(0), false},
		{Number(math.Copysign(0, -1)), false},
		{Number(0.1), true},
		{Number(-2), true},
		{String(""), true},
		{String("x"), true},
	}

	for i, cas := range cases {
		if got := Truthy(cas.v); got != cas.expect {
			t.Errorf("case %d (%s %s): expected %v, got %v", i+1, cas.v.Type(), cas.v, cas.expect, got)
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Number(2), Number(2)) || !Equal(String("a"), String("a")) || !Equal(Nil{}, Nil{}) {
		t.Error("expected equal values")
	}
	if Equal(Number(1), String("1")) || Equal(Bool(false), Nil{}) || Equal(Number(0), Bool(false)) {
		t.Error("expected values of different types to differ")
	}
	if Equal(Number(math.NaN()), Number(math.NaN())) {
		t.Error("expected NaN to differ from itself")
	}
}

func TestString(t *testing.T) {
	cases := map[Value]string{
		Number(2):      "2",
		Number(-3):     "-3",
		Number(0.5):    "0.5",
		Number(1e21):   "1000000000000000000000",
		String("text"): "text",
		Bool(true):     "true",
		Nil{}:          "nil",
	}

	for v, expect := range cases {
		if s := v.String(); s != expect {
			t.Errorf("expected %q, got %q", expect, s)
		}
	}
}

func TestNonFiniteString(t *testing.T) {
	cases := []struct {
		n      Number
		expect string
	}{
		{Number(math.Inf(1)), "inf"},
		{Number(math.Inf(-1)), "-inf"},
		{Number(math.NaN()), "NaN"},
	}

	for _, c := range cases {
		if s := c.n.String(); s != c.expect {
			t.Errorf("expected %q, got %q", c.expect, s)
		}
	}
}
