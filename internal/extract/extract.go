// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract pulls report values out of solver logs. A report line
// carries a marker phrase followed by the value, for example
//
//	After 5000 iterations the best profit is = 1234
//
// and the extracted value is the trimmed text after the first marker.
package extract

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Marker is the phrase the hill climbing and tabu search solvers write
// before their final profit.
const Marker = "the best profit is ="

// StdinPath makes Files read standard input instead of opening a file.
const StdinPath = "-"

// maxLineSize bounds a single log line. Longer lines fail the scan.
const maxLineSize = 1024 * 1024

// Summary holds counts from one or more scans.
type Summary struct {
	// Lines is the number of lines read.
	Lines int
	// Matched is the number of lines containing the marker.
	Matched int
	// Emitted is the number of values written.
	Emitted int
	// Skipped is the number of matched lines with nothing after the marker.
	Skipped int
}

// Add returns the element-wise sum of s and o.
func (s Summary) Add(o Summary) Summary {
	return Summary{
		Lines:   s.Lines + o.Lines,
		Matched: s.Matched + o.Matched,
		Emitted: s.Emitted + o.Emitted,
		Skipped: s.Skipped + o.Skipped,
	}
}

// Value returns the trimmed text after the first occurrence of marker in
// line. ok is false when line does not contain marker or when nothing but
// whitespace follows it.
func Value(line, marker string) (value string, ok bool) {
	_, tail, found := strings.Cut(line, marker)
	if !found {
		return "", false
	}
	value = strings.TrimSpace(tail)
	if value == "" {
		return "", false
	}
	return value, true
}

// Scan reads r line by line and calls emit with every value found after
// marker. Matched lines without a value are counted as skipped. Errors from
// the reader or from emit stop the scan and are returned.
func Scan(r io.Reader, marker string, emit func(string) error) (Summary, error) {
	var summary Summary

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		line := sc.Text()
		summary.Lines++

		if !strings.Contains(line, marker) {
			continue
		}
		summary.Matched++

		value, ok := Value(line, marker)
		if !ok {
			summary.Skipped++
			continue
		}
		if err := emit(value); err != nil {
			return summary, err
		}
		summary.Emitted++
	}

	if err := sc.Err(); err != nil {
		return summary, fmt.Errorf("reading line %d: %w", summary.Lines+1, err)
	}
	return summary, nil
}

// Extractor scans solver logs and writes extracted values, one per line.
type Extractor struct {
	marker string
	stdin  io.Reader
	log    *zap.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithMarker replaces the default marker phrase. An empty marker is ignored.
func WithMarker(marker string) Option {
	return func(e *Extractor) {
		if marker != "" {
			e.marker = marker
		}
	}
}

// WithLogger sets the logger used for diagnostics. Values are never logged.
func WithLogger(log *zap.Logger) Option {
	return func(e *Extractor) {
		if log != nil {
			e.log = log
		}
	}
}

// WithStdin sets the reader used for the "-" path.
func WithStdin(r io.Reader) Option {
	return func(e *Extractor) {
		e.stdin = r
	}
}

// New returns an Extractor using Marker, os.Stdin and a no-op logger
// unless overridden by opts.
func New(opts ...Option) *Extractor {
	e := &Extractor{
		marker: Marker,
		stdin:  os.Stdin,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// File scans the log at path and writes each extracted value to w on its
// own line. A file that cannot be opened produces no output and an error.
func (e *Extractor) File(path string, w io.Writer) (Summary, error) {
	if path == StdinPath {
		return e.scan("stdin", e.stdin, w)
	}

	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("opening log %s: %w", path, err)
	}
	defer f.Close()

	return e.scan(path, f, w)
}

// Files scans each path in order, stopping at the first error. The returned
// summary covers every file scanned so far.
func (e *Extractor) Files(paths []string, w io.Writer) (Summary, error) {
	var total Summary
	for _, path := range paths {
		s, err := e.File(path, w)
		total = total.Add(s)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func (e *Extractor) scan(name string, r io.Reader, w io.Writer) (Summary, error) {
	log := e.log.With(zap.String("file", name))

	summary, err := Scan(r, e.marker, func(value string) error {
		_, err := fmt.Fprintln(w, value)
		return err
	})
	if err != nil {
		log.Error("scan failed", zap.Error(err))
		return summary, fmt.Errorf("scanning %s: %w", name, err)
	}

	if summary.Skipped > 0 {
		log.Debug("skipped report lines with no value", zap.Int("skipped", summary.Skipped))
	}
	log.Info("scan complete",
		zap.Int("lines", summary.Lines),
		zap.Int("matched", summary.Matched),
		zap.Int("emitted", summary.Emitted),
	)
	return summary, nil
}
