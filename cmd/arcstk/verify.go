package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crf8472/arcstk/calc"
	"github.com/crf8472/arcstk/dbar"
	"github.com/crf8472/arcstk/id"
	"github.com/crf8472/arcstk/verify"
)

var (
	verifyRefFile  string
	verifyTrackset bool
	verifyLiberal  bool
	verifyDump     bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify WAVFILE...",
	Short: "Verify WAV track fixtures against a dBAR reference",
	Long: `Decode one WAV fixture per track, compute its ARCS checksums the same
way "arcstk calc" does, and verify the result against a reference dBAR
file fetched or stored locally (--ref).`,
	Args:                  cobra.MinimumNArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verifyRefFile == "" {
			return errors.New("verify: --ref is required")
		}

		refFile, err := os.Open(verifyRefFile)
		if err != nil {
			return errors.Wrap(err, "verify")
		}
		defer refFile.Close()

		ref, err := dbar.Parse(refFile)
		if err != nil {
			return errors.Wrap(err, "verify")
		}

		tracks := make([]decodedTrack, 0, len(args))
		for _, path := range args {
			t, err := decodeWAV(path)
			if err != nil {
				return errors.Wrap(err, "verify")
			}
			tracks = append(tracks, t)
		}

		t, err := tocFromTracks(tracks)
		if err != nil {
			return errors.Wrap(err, "verify")
		}

		actualID, err := t.ARId()
		if err != nil {
			return errors.Wrap(err, "verify")
		}

		ctx := calc.NewContext()
		c, err := calc.NewCalculation(t, calc.V1AndV2, ctx)
		if err != nil {
			return errors.Wrap(err, "verify")
		}
		for i, track := range tracks {
			if err := c.Update(track.samples); err != nil {
				return errors.Wrapf(err, "verify: updating with track %d", i+1)
			}
		}
		actual, err := c.Result()
		if err != nil {
			return errors.Wrap(err, "verify")
		}

		var v *verify.Verifier
		var queryID id.ARId
		if verifyTrackset {
			v = verify.NewTracksetVerifier(ref)
			queryID = id.Empty
		} else {
			v = verify.NewAlbumVerifier(ref)
			queryID = actualID
		}

		outcome, err := v.Verify(actual, queryID)
		if err != nil {
			return errors.Wrap(err, "verify")
		}
		if verifyLiberal {
			outcome.SetTrackPolicy(verify.Liberal)
		}

		if verifyDump {
			if err := outcome.Result().Dump(os.Stdout); err != nil {
				return errors.Wrap(err, "verify")
			}
		}

		block, isV2, diff := outcome.BestBlock()
		fmt.Printf("best block: %d (ARCSv2=%v) difference=%d\n", block, isV2, diff)

		allOK, err := outcome.AllTracksVerified()
		if err != nil {
			return errors.Wrap(err, "verify")
		}
		fmt.Printf("all tracks verified: %v\n", allOK)

		for i := range tracks {
			ok, err := outcome.IsVerified(i)
			if err != nil {
				return errors.Wrap(err, "verify")
			}
			fmt.Printf("  track %02d: verified=%v\n", i+1, ok)
		}

		if !allOK {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	verifyCmd.Flags().StringVar(&verifyRefFile, "ref", "", "reference dBAR file (required)")
	verifyCmd.Flags().BoolVar(&verifyTrackset, "trackset", false, "verify as an unordered trackset instead of a positional album")
	verifyCmd.Flags().BoolVar(&verifyLiberal, "liberal", false, "accept a track verified in any block, not just the best one")
	verifyCmd.Flags().BoolVar(&verifyDump, "dump", false, "dump the full per-block flag matrix before the summary")
	rootCmd.AddCommand(verifyCmd)
}
