//go:build mage

// Package main contains Mage build targets for profit-report developer tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binDir  = "bin"
	binName = "profit-report"
	cmdPkg  = "./cmd/profit-report"
)

// Build compiles the CLI binary into bin/. The version is taken from
// $VERSION, falling back to "dev".
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	out := filepath.Join(binDir, binName)
	if err := sh.RunV("go", "build", "-ldflags", "-X main.version="+version, "-o", out, cmdPkg); err != nil {
		return fmt.Errorf("go build: %w", err)
	}
	fmt.Printf("Built %s\n", out)
	return nil
}

// Test runs the unit tests for every package.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check runs vet and the tests.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// sampleRuns mimics the logs written by the hill climbing and tabu search
// solvers: improvement rows followed by one report line per run.
var sampleRuns = []struct {
	iterations int
	rows       [][2]int
	profit     int
	weight     int // zero for hill climbing, which does not report weight
}{
	{iterations: 5000, rows: [][2]int{{1, 120}, {14, 188}, {260, 231}}, profit: 231},
	{iterations: 312, rows: [][2]int{{3, 140}, {77, 219}}, profit: 219, weight: 97},
	{iterations: 1200, rows: [][2]int{{9, 201}, {451, 240}}, profit: 240, weight: 100},
}

// Sample writes log.txt with a few solver runs for trying out extract.
func Sample() error {
	var b strings.Builder
	for _, run := range sampleRuns {
		for _, row := range run.rows {
			fmt.Fprintf(&b, "%7d\t%5d\n", row[0], row[1])
		}
		if run.weight > 0 {
			fmt.Fprintf(&b, "After %d iterations the best profit is = %d (w=%d)\n", run.iterations, run.profit, run.weight)
		} else {
			fmt.Fprintf(&b, "After %d iterations the best profit is = %d\n", run.iterations, run.profit)
		}
	}
	if err := os.WriteFile("log.txt", []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("writing log.txt: %w", err)
	}
	fmt.Printf("Wrote log.txt (%d runs)\n", len(sampleRuns))
	return nil
}

// Extract builds the CLI and runs it against log.txt.
func Extract() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binDir, binName), "extract")
}
