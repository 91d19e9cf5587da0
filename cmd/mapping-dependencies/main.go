// Command mapping-dependencies is the thin orchestrator around the core
// engine: it ingests configured RETW files, builds the run plan, and
// flushes accumulated diagnostics, following the extract->report->generate
// ordering of the original Genesis.start_processing pipeline (minus the
// generation/publishing stages, which are out of scope for the core).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
