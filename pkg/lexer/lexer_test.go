package lexer

import (
	"strings"
	"testing"

	"mython/pkg/token"
)

func collect(t *testing.T, src string) []token.Token {
	t.Helper()
	lx, err := New(strings.NewReader(src))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	var got []token.Token
	for {
		tok := lx.Current()
		got = append(got, tok)
		if tok.Kind == token.Eof {
			break
		}
		if _, err := lx.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	return got
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func assertKinds(t *testing.T, got []token.Token, want []token.Kind) {
	t.Helper()
	gk := kinds(got)
	if len(gk) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(gk), gk, len(want), want)
	}
	for i := range want {
		if gk[i] != want[i] {
			t.Fatalf("token %d: got %v want %v (full: %v)", i, gk[i], want[i], gk)
		}
	}
}

func TestSimpleAssignmentAndPrint(t *testing.T) {
	src := "x = 1\nprint x\n"
	got := collect(t, src)
	assertKinds(t, got, []token.Kind{
		token.Id, token.Char, token.Number, token.Newline,
		token.Print, token.Id, token.Newline,
		token.Eof,
	})
}

func TestIndentDedentBalanced(t *testing.T) {
	src := "if x:\n  y = 1\n  z = 2\nw = 3\n"
	got := collect(t, src)
	assertKinds(t, got, []token.Kind{
		token.If, token.Id, token.Char, token.Newline,
		token.Indent,
		token.Id, token.Char, token.Number, token.Newline,
		token.Id, token.Char, token.Number, token.Newline,
		token.Dedent,
		token.Id, token.Char, token.Number, token.Newline,
		token.Eof,
	})
}

func TestDedentsAtEOF(t *testing.T) {
	src := "class A:\n  def m(self):\n    return 1\n"
	got := collect(t, src)
	// two nested indents must be balanced by two dedents before Eof.
	indentCount, dedentCount := 0, 0
	for _, k := range kinds(got) {
		if k == token.Indent {
			indentCount++
		}
		if k == token.Dedent {
			dedentCount++
		}
	}
	if indentCount != dedentCount {
		t.Fatalf("unbalanced indent/dedent: %d indents, %d dedents", indentCount, dedentCount)
	}
	if got[len(got)-1].Kind != token.Eof {
		t.Fatalf("expected trailing Eof, got %v", got[len(got)-1])
	}
}

func TestTwoCharOperators(t *testing.T) {
	src := "a == b\nc != d\ne <= f\ng >= h\n"
	got := collect(t, src)
	assertKinds(t, got, []token.Kind{
		token.Id, token.Eq, token.Id, token.Newline,
		token.Id, token.NotEq, token.Id, token.Newline,
		token.Id, token.LessOrEq, token.Id, token.Newline,
		token.Id, token.GreaterOrEq, token.Id, token.Newline,
		token.Eof,
	})
}

func TestStringEscapes(t *testing.T) {
	src := `s = "a\nb\tc\\d"` + "\n"
	got := collect(t, src)
	var str token.Token
	for _, tok := range got {
		if tok.Kind == token.String {
			str = tok
		}
	}
	want := "a\nb\tc\\d"
	if str.Text != want {
		t.Fatalf("decoded string = %q, want %q", str.Text, want)
	}
}

func TestCommentStripped(t *testing.T) {
	src := "x = 1 # trailing comment\n"
	got := collect(t, src)
	assertKinds(t, got, []token.Kind{
		token.Id, token.Char, token.Number, token.Newline, token.Eof,
	})
}

func TestBlankLinesIgnored(t *testing.T) {
	src := "x = 1\n\n   \ny = 2\n"
	got := collect(t, src)
	assertKinds(t, got, []token.Kind{
		token.Id, token.Char, token.Number, token.Newline,
		token.Id, token.Char, token.Number, token.Newline,
		token.Eof,
	})
}

func TestLeadingNewlinesSkippedAtConstruction(t *testing.T) {
	lx, err := New(strings.NewReader("\n\n# comment\nx = 1\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if lx.Current().Kind == token.Newline {
		t.Fatalf("Current() should never be a leading Newline, got %v", lx.Current())
	}
	if lx.Current().Kind != token.Id {
		t.Fatalf("Current() = %v, want Id", lx.Current())
	}
}

func TestDigitLedWordFallsBackToId(t *testing.T) {
	src := "3x = 1\n"
	got := collect(t, src)
	assertKinds(t, got, []token.Kind{
		token.Id, token.Char, token.Number, token.Newline, token.Eof,
	})
	if got[0].Text != "3x" {
		t.Fatalf("got Id text %q, want %q", got[0].Text, "3x")
	}
}

func TestBadIndentationIsFatal(t *testing.T) {
	_, err := New(strings.NewReader(" x = 1\n"))
	if err == nil {
		t.Fatalf("expected error for odd indentation")
	}
}

func TestEofIsStable(t *testing.T) {
	lx, err := New(strings.NewReader("x = 1\n"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for lx.Current().Kind != token.Eof {
		if _, err := lx.Next(); err != nil {
			t.Fatalf("Next: %v", err)
		}
	}
	for i := 0; i < 3; i++ {
		tok, err := lx.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if tok.Kind != token.Eof {
			t.Fatalf("expected Eof forever, got %v", tok)
		}
	}
}
