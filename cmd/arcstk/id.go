package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var idCmd = &cobra.Command{
	Use:   "id WAVFILE...",
	Short: "Print the canonical ARId of a sequence of WAV track fixtures",
	Long: `Decode one WAV fixture per track, derive a ToC the same way "arcstk calc"
does, and print the resulting ARId, dBAR filename and AccurateRip URL.`,
	Args:                  cobra.MinimumNArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		tracks := make([]decodedTrack, 0, len(args))
		for _, path := range args {
			t, err := decodeWAV(path)
			if err != nil {
				return errors.Wrap(err, "id")
			}
			tracks = append(tracks, t)
		}

		t, err := tocFromTracks(tracks)
		if err != nil {
			return errors.Wrap(err, "id")
		}

		arId, err := t.ARId()
		if err != nil {
			return errors.Wrap(err, "id")
		}

		fmt.Println(arId)
		fmt.Println(arId.Filename())
		fmt.Println(arId.URL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(idCmd)
}
