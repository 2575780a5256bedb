package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func captureStdout(t *testing.T, fn func() int) (string, int) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	code := fn()
	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String(), code
}

func TestRunEntryWithFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "main.my", "print 1 + 2\n")

	out, code := captureStdout(t, func() int { return run([]string{path}) })
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if out != "3\n" {
		t.Fatalf("got %q", out)
	}
}

func TestRunEntryMissingFile(t *testing.T) {
	code := run([]string{filepath.Join(t.TempDir(), "nope.my")})
	if code == 0 {
		t.Fatal("expected non-zero exit for missing file")
	}
}

func TestRunEntryManifestDriven(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "mython.yml", "name: demo\nentry: main.my\nlibraries:\n  - name: shapes\n    path: shapes.my\n")
	writeFile(t, dir, "shapes.my", "class Greeter:\n  def hi(self):\n    return \"hi\"\n")
	writeFile(t, dir, "main.my", "g = Greeter()\nprint g.hi()\n")

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(cwd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}

	out, code := captureStdout(t, func() int { return run(nil) })
	if code != 0 {
		t.Fatalf("exit code %d, out %q", code, out)
	}
	if out != "hi\n" {
		t.Fatalf("got %q", out)
	}
}

func TestVersionFlag(t *testing.T) {
	code := run([]string{"--version"})
	if code != 0 {
		t.Fatalf("exit code %d", code)
	}
}
