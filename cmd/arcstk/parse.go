package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crf8472/arcstk/dbar"
)

var parseRewriteTo string

var parseCmd = &cobra.Command{
	Use:                   "parse FILE",
	Short:                 "Parse and print a dBAR response file",
	Long:                  `Parse an AccurateRip dBAR binary response file and print its block headers and track triplets.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "parse")
		}
		defer f.Close()

		d, err := dbar.Parse(f)
		if err != nil {
			return errors.Wrap(err, "parse")
		}

		for b := 0; b < d.BlockCount(); b++ {
			blk := d.Block(b)
			h := blk.Header()
			fmt.Printf("block %d: tracks=%d id1=%08x id2=%08x cddbID=%08x\n", b, h.TotalTracks, h.ID1, h.ID2, h.CDDBID)
			for t := 0; t < blk.TrackCount(); t++ {
				tr := blk.Triplet(t)
				fmt.Printf("  track %02d: confidence=%d arcs=%08x valid=%v frame450=%08x valid=%v\n",
					t+1, tr.Confidence, tr.Arcs, tr.ArcsValid, tr.Frame450Arcs, tr.Frame450Valid)
			}
		}

		if parseRewriteTo != "" {
			out, err := os.Create(parseRewriteTo)
			if err != nil {
				return errors.Wrap(err, "parse")
			}
			defer out.Close()
			n, err := d.WriteTo(out)
			if err != nil {
				return errors.Wrap(err, "parse")
			}
			fmt.Printf("rewrote %d bytes to %s\n", n, parseRewriteTo)
		}

		return nil
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseRewriteTo, "rewrite-to", "", "re-serialize the parsed dBAR to this path")
	rootCmd.AddCommand(parseCmd)
}
