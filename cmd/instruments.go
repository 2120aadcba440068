package cmd

import (
	"fmt"

	"github.com/jsphweid/barscribe/instrument"
	"github.com/spf13/cobra"
)

var instrumentsPercussion bool

func init() {
	instrumentsCmd.Flags().BoolVar(&instrumentsPercussion, "percussion", false, "list the percussion keys instead")
	rootCmd.AddCommand(instrumentsCmd)
}

var instrumentsCmd = &cobra.Command{
	Use:   "instruments",
	Short: "Lists General MIDI instruments",
	Long:  `Lists General MIDI instruments usable in the instrument field of a tune`,
	Run: func(cmd *cobra.Command, args []string) {
		if instrumentsPercussion {
			for _, k := range instrument.PercussionKeys() {
				fmt.Printf("%3d %v\n", uint8(k), k)
			}
			return
		}
		for _, i := range instrument.AllMidiInstrs() {
			fmt.Printf("%3d %v\n", uint8(i), i)
		}
	},
}
