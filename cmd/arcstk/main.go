// Command arcstk is a thin front end exercising the library end to end:
// computing ARCS checksums from WAV fixtures, parsing and dumping dBAR
// response files, verifying a computed Checksums against one, and
// rendering a disc's canonical ARId.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crf8472/arcstk/arclog"
)

var verboseLogging bool

var rootCmd = &cobra.Command{
	Use:           "arcstk",
	Short:         "Compute and verify AccurateRip checksums",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return arclog.Init(arclog.Options{Development: verboseLogging})
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return arclog.Shutdown()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseLogging, "verbose", "v", false, "human-readable development logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
