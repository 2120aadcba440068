package cmd

import (
	"fmt"

	"github.com/jsphweid/barscribe/midi"
	"github.com/jsphweid/barscribe/note"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Prints the notes of a midi file",
	Long:  `Prints the notes of a midi file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(args[0])
	},
}

func inspect(path string) error {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return err
	}
	fmt.Printf("tracks: %v, time format: %v\n", len(s.Tracks), s.TimeFormat)
	for _, e := range midi.NoteEvents(s) {
		if !e.On {
			continue
		}
		fmt.Printf("track %v tick %v: %v (key %v, velocity %v)\n",
			e.Track, e.AbsTicks, note.FromInt(int(e.Key)-12), e.Key, e.Velocity)
	}
	return nil
}
