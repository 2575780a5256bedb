package runtime

import (
	"bytes"
	"testing"
)

func ctx(w *bytes.Buffer) Context {
	return NewSimpleContext(w, NewClosure())
}

func TestEqualBothEmpty(t *testing.T) {
	ok, err := Equal(None(), None(), ctx(&bytes.Buffer{}))
	if err != nil || !ok {
		t.Fatalf("Equal(None, None) = %v, %v; want true, nil", ok, err)
	}
}

func TestEqualPrimitives(t *testing.T) {
	c := ctx(&bytes.Buffer{})
	ok, err := Equal(Own(Number{3}), Own(Number{3}), c)
	if err != nil || !ok {
		t.Fatalf("3 == 3: %v, %v", ok, err)
	}
	ok, err = Equal(Own(Number{3}), Own(Number{4}), c)
	if err != nil || ok {
		t.Fatalf("3 == 4: %v, %v", ok, err)
	}
	ok, err = Equal(Own(String{"a"}), Own(String{"a"}), c)
	if err != nil || !ok {
		t.Fatalf(`"a" == "a": %v, %v`, ok, err)
	}
}

func TestComparisonTotality(t *testing.T) {
	c := ctx(&bytes.Buffer{})
	l, r := Own(Number{1}), Own(Number{2})
	less, _ := Less(l, r, c)
	greater, _ := Greater(l, r, c)
	eq, _ := Equal(l, r, c)
	if !(less != greater || eq) {
		t.Fatalf("expected exactly one of less/greater (or equal) to hold")
	}
	if !less || greater || eq {
		t.Fatalf("1 vs 2: less=%v greater=%v eq=%v", less, greater, eq)
	}
}

func TestMethodResolutionInheritance(t *testing.T) {
	parent := NewClass("Animal", []*Method{
		{Name: "speak", Params: nil, Body: constExecutable{Own(String{"..."})}},
	}, nil)
	child := NewClass("Dog", nil, parent)

	inst := NewInstance(child)
	if !inst.HasMethod("speak", 0) {
		t.Fatalf("expected Dog to inherit speak from Animal")
	}
	result, err := inst.Call("speak", nil, ctx(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	s, ok := As[String](result)
	if !ok || s.Value != "..." {
		t.Fatalf("speak() = %v", result)
	}
}

func TestHasMethodChecksArityOfInheritedMethod(t *testing.T) {
	parent := NewClass("Base", []*Method{
		{Name: "f", Params: []string{"x"}, Body: constExecutable{Own(Number{1})}},
	}, nil)
	child := NewClass("Derived", nil, parent)
	inst := NewInstance(child)

	if inst.HasMethod("f", 0) {
		t.Fatalf("arity mismatch should not count as HasMethod")
	}
	if !inst.HasMethod("f", 1) {
		t.Fatalf("expected inherited f/1 to resolve")
	}
}

func TestFieldAssignmentVisibility(t *testing.T) {
	cls := NewClass("Point", nil, nil)
	inst := NewInstance(cls)
	inst.Fields.Set("x", Own(Number{5}))

	h, ok := inst.Fields.Lookup("x")
	if !ok {
		t.Fatalf("expected field x to be visible after assignment")
	}
	n, _ := As[Number](h)
	if n.Value != 5 {
		t.Fatalf("x = %v, want 5", n.Value)
	}
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	_, err := Div(Own(Number{1}), Own(Number{0}), ctx(&bytes.Buffer{}))
	if err == nil {
		t.Fatalf("expected division by zero error")
	}
}

func TestIsTrue(t *testing.T) {
	cases := []struct {
		h    ObjectHolder
		want bool
	}{
		{None(), false},
		{Own(String{""}), false},
		{Own(String{"x"}), true},
		{Own(Number{0}), false},
		{Own(Number{1}), true},
		{Own(Bool{false}), false},
		{Own(Bool{true}), true},
	}
	for _, c := range cases {
		if got := IsTrue(c.h); got != c.want {
			t.Errorf("IsTrue(%v) = %v, want %v", c.h.Get(), got, c.want)
		}
	}
}

// constExecutable is a minimal Executable stub for tests that do not need
// pkg/ast, exercising the structural Executable contract directly.
type constExecutable struct {
	value ObjectHolder
}

func (c constExecutable) Execute(_ Closure, _ Context) (ObjectHolder, error) {
	return c.value, nil
}
