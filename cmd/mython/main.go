package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"

	"mython/pkg/bundle"
	"mython/pkg/program"
)

const cliToolVersion = "mython-cli 0.0.0-dev"

var errManifestNotFound = errors.New("mython.yml not found")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runEntry(nil)
	}

	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "libs":
		return runLibs(args[1:])
	case "repl":
		if err := runREPL(); err != nil {
			fmt.Fprintf(os.Stderr, "repl error: %v\n", err)
			return 1
		}
		return 0
	default:
		return runEntry(args)
	}
}

// runEntry implements `mython run <file>` and the bare `mython` (manifest
// discovery) and `mython <file>` forms.
func runEntry(args []string) int {
	if len(args) > 1 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %s\n", strings.Join(args[1:], " "))
		return 1
	}

	if len(args) == 1 {
		return executeFile(args[0])
	}

	manifestPath, err := findManifest(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "mython run requires a source file or a mython.yml manifest")
		return 1
	}
	return executeManifest(manifestPath)
}

func executeFile(path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open %s: %v\n", path, err)
		return 1
	}
	defer f.Close()

	if err := program.Run(f, os.Stdout); err != nil {
		reportRuntimeError(err)
		return 1
	}
	return 0
}

func executeManifest(manifestPath string) int {
	m, err := bundle.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read manifest: %v\n", err)
		return 1
	}

	manifestDir := filepath.Dir(manifestPath)
	prelude := ""
	if len(m.Libraries) > 0 {
		loader, err := bundle.NewLoader()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to initialize library loader: %v\n", err)
			return 1
		}
		prelude, err = loader.Resolve(m, manifestDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to resolve libraries: %v\n", err)
			return 1
		}
	}

	entryData, err := os.ReadFile(m.EntryPath(manifestPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read entry %s: %v\n", m.Entry, err)
		return 1
	}

	src := strings.NewReader(prelude + string(entryData))
	if err := program.Run(src, os.Stdout); err != nil {
		reportRuntimeError(err)
		return 1
	}
	return 0
}

func runLibs(args []string) int {
	if len(args) == 0 || args[0] != "fetch" {
		fmt.Fprintln(os.Stderr, "mython libs requires a subcommand (fetch)")
		return 1
	}

	manifestPath, err := findManifest(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to locate mython.yml: %v\n", err)
		return 1
	}
	m, err := bundle.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read manifest: %v\n", err)
		return 1
	}
	loader, err := bundle.NewLoader()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize library loader: %v\n", err)
		return 1
	}
	if _, err := loader.Resolve(m, filepath.Dir(manifestPath)); err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch libraries: %v\n", err)
		return 1
	}
	fmt.Fprintf(os.Stdout, "fetched %d librar(y/ies) into %s\n", len(m.Libraries), loader.Home)
	return 0
}

func reportRuntimeError(err error) {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31mruntime error:\x1b[0m %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "runtime error: %v\n", err)
}

func findManifest(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %q: %w", start, err)
	}
	if info, statErr := os.Stat(dir); statErr == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}
	origin := dir
	for {
		candidate := filepath.Join(dir, "mython.yml")
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no mython.yml found from %s upwards: %w", origin, errManifestNotFound)
		}
		dir = parent
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  mython run <file.my>")
	fmt.Fprintln(os.Stderr, "  mython run          (uses the nearest mython.yml in the current directory or a parent)")
	fmt.Fprintln(os.Stderr, "  mython <file.my>")
	fmt.Fprintln(os.Stderr, "  mython libs fetch")
	fmt.Fprintln(os.Stderr, "  mython repl")
}
