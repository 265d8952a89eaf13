package results

import (
	"fmt"
	"log"
	"os"
)

// Sink merges results as chunks complete, emits a live line per resolution and
// appends the same line durably when an output file is configured. One write
// per line, so everything emitted before an interruption is already on disk.
type Sink struct {
	set         *Set
	output      *os.File
	writeFailed bool
}

// NewSink constructs a sink, opening the output file for appending when given.
// An unwritable output degrades to terminal-only emission with a warning.
func NewSink(outputPath string) *Sink {
	sink := &Sink{set: NewSet()}
	if outputPath == "" {
		return sink
	}

	output, err := os.OpenFile(outputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("[results] could not open output file %s, continuing with terminal output only: %s", outputPath, err)
		return sink
	}
	sink.output = output

	return sink
}

// Record resolves one hash: remembers the result, prints the live line and
// appends it to the output file. Duplicate results for a hash are dropped.
func (sink *Sink) Record(result Result) {
	if !sink.set.Add(result) {
		return
	}

	line := result.Line()
	fmt.Println(line)

	if sink.output == nil || sink.writeFailed {
		return
	}
	if _, err := sink.output.WriteString(line + "\n"); err != nil {
		log.Printf("[results] could not append to output file, continuing with terminal output only: %s", err)
		sink.writeFailed = true
	}
}

// Results exposes the ordered set recorded so far
func (sink *Sink) Results() *Set {
	return sink.set
}

// Summary is the final tally over everything recorded
func (sink *Sink) Summary() Summary {
	return sink.set.Summary()
}

// Close releases the output file if one was opened
func (sink *Sink) Close() {
	if sink.output != nil {
		sink.output.Close()
	}
}
