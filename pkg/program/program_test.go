package program

import (
	"bytes"
	"strings"
	"testing"
)

func runSrc(t *testing.T, src string) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Run(strings.NewReader(src), &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return buf.String()
}

func TestEndToEndShapeProgram(t *testing.T) {
	src := strings.Join([]string{
		"class Shape:",
		"  def area(self):",
		"    return 0",
		"  def describe(self):",
		"    return \"area=\" + str(self.area())",
		"class Square(Shape):",
		"  def __init__(self, side):",
		"    self.side = side",
		"  def area(self):",
		"    return self.side * self.side",
		"s = Square(4)",
		"print s.describe()",
		"",
	}, "\n")
	got := runSrc(t, src)
	if got != "area=16\n" {
		t.Fatalf("got %q", got)
	}
}

func TestEndToEndCounterWithEquality(t *testing.T) {
	src := strings.Join([]string{
		"class Counter:",
		"  def __init__(self, n):",
		"    self.n = n",
		"  def __eq__(self, other):",
		"    return self.n == other.n",
		"a = Counter(3)",
		"b = Counter(3)",
		"print a == b",
		"",
	}, "\n")
	got := runSrc(t, src)
	if got != "True\n" {
		t.Fatalf("got %q", got)
	}
}

func TestGlobalClassVisibleInsideMethodActivation(t *testing.T) {
	src := strings.Join([]string{
		"class Box:",
		"  def __init__(self, v):",
		"    self.v = v",
		"class Factory:",
		"  def make(self, v):",
		"    return Box(v)",
		"f = Factory()",
		"b = f.make(9)",
		"print b.v",
		"",
	}, "\n")
	got := runSrc(t, src)
	if got != "9\n" {
		t.Fatalf("got %q", got)
	}
}
