package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// errStructuralFailure marks a run that must exit 1: a cyclic ETL
// projection, an empty run plan (NoFlow), or an ingestion failure severe
// enough that no plan could be built at all.
var errStructuralFailure = errors.New("structural failure")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mapping-dependencies",
		Short:         "Derive run plans and impact reports from RETW extracts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newImpactCmd())
	return root
}

func newLogger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}
