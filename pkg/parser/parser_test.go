package parser

import (
	"bytes"
	"strings"
	"testing"

	"mython/pkg/lexer"
	"mython/pkg/runtime"
)

func run(t *testing.T, src string) string {
	t.Helper()
	lx, err := lexer.New(strings.NewReader(src))
	if err != nil {
		t.Fatalf("lexer.New: %v", err)
	}
	p := New(lx)
	module, err := p.ParseModule()
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	var buf bytes.Buffer
	closure := runtime.NewClosure()
	ctx := runtime.NewSimpleContext(&buf, closure)
	if _, err := module.Execute(closure, ctx); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return buf.String()
}

func TestArithmeticProgram(t *testing.T) {
	src := "x = 2 + 3 * 4\nprint x\n"
	got := run(t, src)
	if got != "14\n" {
		t.Fatalf("got %q, want %q", got, "14\n")
	}
}

func TestStringConcatAndStringify(t *testing.T) {
	src := "a = \"foo\"\nb = \"bar\"\nprint a + b\nprint str(1 + 2)\n"
	got := run(t, src)
	if got != "foobar\n3\n" {
		t.Fatalf("got %q", got)
	}
}

func TestIfElse(t *testing.T) {
	src := "x = 5\nif x > 0:\n  print \"pos\"\nelse:\n  print \"non-pos\"\n"
	got := run(t, src)
	if got != "pos\n" {
		t.Fatalf("got %q", got)
	}
}

func TestClassWithMethodsAndInheritance(t *testing.T) {
	src := strings.Join([]string{
		"class Animal:",
		"  def __init__(self, name):",
		"    self.name = name",
		"  def speak(self):",
		"    return \"...\"",
		"class Dog(Animal):",
		"  def speak(self):",
		"    return self.name + \" says Woof\"",
		"d = Dog(\"Rex\")",
		"print d.speak()",
		"",
	}, "\n")
	got := run(t, src)
	if got != "Rex says Woof\n" {
		t.Fatalf("got %q", got)
	}
}

func TestMethodReturnThroughIfElse(t *testing.T) {
	src := strings.Join([]string{
		"class Classifier:",
		"  def classify(self, n):",
		"    if n < 0:",
		"      return \"negative\"",
		"    return \"non-negative\"",
		"c = Classifier()",
		"print c.classify(-3)",
		"print c.classify(3)",
		"",
	}, "\n")
	got := run(t, src)
	if got != "negative\nnon-negative\n" {
		t.Fatalf("got %q", got)
	}
}

func TestUnaryMinus(t *testing.T) {
	src := "print -3\nprint -3 * 4\nprint 10 - -2\n"
	got := run(t, src)
	want := "-3\n-12\n12\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestComparisonOperators(t *testing.T) {
	src := "print 1 == 1\nprint 1 != 2\nprint 2 < 3\nprint 3 <= 3\nprint 4 >= 5\nprint 5 > 4\n"
	got := run(t, src)
	want := "True\nTrue\nTrue\nTrue\nFalse\nTrue\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestLogicalOperators(t *testing.T) {
	src := "print True and False\nprint False or True\nprint not True\n"
	got := run(t, src)
	want := "False\nTrue\nFalse\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDunderArithmeticDispatch(t *testing.T) {
	src := strings.Join([]string{
		"class Vec:",
		"  def __init__(self, x):",
		"    self.x = x",
		"  def __add__(self, other):",
		"    return Vec(self.x + other.x)",
		"  def __str__(self):",
		"    return str(self.x)",
		"a = Vec(1)",
		"b = Vec(2)",
		"print a + b",
		"",
	}, "\n")
	got := run(t, src)
	if got != "3\n" {
		t.Fatalf("got %q", got)
	}
}

func TestNoneLiteralAndPrint(t *testing.T) {
	src := "x = None\nprint x\n"
	got := run(t, src)
	if got != "None\n" {
		t.Fatalf("got %q", got)
	}
}
