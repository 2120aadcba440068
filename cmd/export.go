package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jsphweid/barscribe/constants"
	"github.com/jsphweid/barscribe/midi"
	"github.com/jsphweid/barscribe/model"
	"github.com/jsphweid/barscribe/sample"
	"github.com/jsphweid/barscribe/tune"
	"github.com/jsphweid/barscribe/util"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	exportOut     string
	exportPreview int
	exportChannel uint8
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: a new file in OUT_PATH)")
	exportCmd.Flags().IntVarP(&exportPreview, "preview", "p", 0, "only keep the first N note on/off messages")
	exportCmd.Flags().Uint8VarP(&exportChannel, "channel", "c", 0, "midi channel (0-15)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <tune.yaml>",
	Short: "Renders a tune file to a midi file",
	Long:  `Renders a tune file to a midi file`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := tune.Load(args[0])
		if err != nil {
			return err
		}
		path, err := exportTune(t, exportOut, exportPreview, exportChannel)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %v to %v\n", t.Title, path)
		return nil
	},
}

func tuneToSMF(t model.Tune, preview int, channel uint8) (*smf.SMF, error) {
	if channel > 15 {
		return nil, fmt.Errorf("midi channel %d is out of range", channel)
	}
	tr, err := tune.Render(t)
	if err != nil {
		return nil, err
	}
	s, err := midi.FromTrack(tr, tune.BPM(t), channel)
	if err != nil {
		return nil, err
	}
	if preview > 0 {
		s = sample.Create(s, 0, preview)
	}
	return s, nil
}

// exportTune writes t to out, or to a uuid named file in the output dir when
// out is empty, and returns the path written.
func exportTune(t model.Tune, out string, preview int, channel uint8) (string, error) {
	s, err := tuneToSMF(t, preview, channel)
	if err != nil {
		return "", err
	}
	if out == "" {
		if err := util.EnsureOutputDir(); err != nil {
			return "", err
		}
		out = filepath.Join(constants.GetOutDir(), uuid.New().String()+".mid")
	}
	if err := midi.WriteMidiFile(out, s); err != nil {
		return "", err
	}
	return out, nil
}
