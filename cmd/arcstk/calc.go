package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/crf8472/arcstk/arclog"
	"github.com/crf8472/arcstk/calc"
)

var (
	calcAlgorithm string
	calcNoSkip    bool
)

var calcCmd = &cobra.Command{
	Use:   "calc WAVFILE...",
	Short: "Compute ARCS checksums from a sequence of WAV track fixtures",
	Long: `Decode one WAV fixture per track, in track order, and compute the
ARCSv1/v2 checksum of each track plus the disc's ARId. The disc's table of
contents is derived from the fixtures themselves: track 1 starts at frame
0, and every following track starts where the previous one ends.`,
	Args:                  cobra.MinimumNArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		algorithm, err := parseAlgorithm(calcAlgorithm)
		if err != nil {
			return err
		}

		tracks := make([]decodedTrack, 0, len(args))
		for _, path := range args {
			t, err := decodeWAV(path)
			if err != nil {
				return errors.Wrap(err, "calc")
			}
			tracks = append(tracks, t)
		}

		t, err := tocFromTracks(tracks)
		if err != nil {
			return errors.Wrap(err, "calc")
		}

		arId, err := t.ARId()
		if err != nil {
			return errors.Wrap(err, "calc")
		}

		ctx := calc.NewContext(calc.WithSkip(!calcNoSkip))
		c, err := calc.NewCalculation(t, algorithm, ctx)
		if err != nil {
			return errors.Wrap(err, "calc")
		}

		for i, track := range tracks {
			arclog.Infof("calc: feeding track %d (%s), %d frames", i+1, track.path, track.frames())
			if err := c.Update(track.samples); err != nil {
				return errors.Wrapf(err, "calc: updating with track %d", i+1)
			}
		}

		results, err := c.Result()
		if err != nil {
			return errors.Wrap(err, "calc")
		}

		fmt.Printf("ARId: %s\n", arId)
		fmt.Printf("Filename: %s\n", arId.Filename())
		fmt.Printf("URL: %s\n", arId.URL())
		for i, set := range results {
			v1, hasV1 := set.Value(calc.ARCS1)
			v2, hasV2 := set.Value(calc.ARCS2)
			fmt.Printf("track %02d  len=%d", i+1, set.Length())
			if hasV1 {
				fmt.Printf("  ARCSv1=%08x", v1)
			}
			if hasV2 {
				fmt.Printf("  ARCSv2=%08x", v2)
			}
			fmt.Println()
		}

		return nil
	},
}

func parseAlgorithm(s string) (calc.Algorithm, error) {
	switch s {
	case "", "both", "v1+v2":
		return calc.V1AndV2, nil
	case "v1":
		return calc.V1, nil
	case "v2":
		return calc.V2, nil
	default:
		return 0, errors.Errorf("unknown algorithm %q (want v1, v2 or both)", s)
	}
}

func init() {
	calcCmd.Flags().StringVarP(&calcAlgorithm, "algorithm", "a", "both", `Which checksum(s) to compute: "v1", "v2" or "both"`)
	calcCmd.Flags().BoolVar(&calcNoSkip, "no-skip", false, "disable the front/back sample skip")
	rootCmd.AddCommand(calcCmd)
}
