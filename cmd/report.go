package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/barscribe/constants"
	"github.com/jsphweid/barscribe/midi"
	"github.com/jsphweid/barscribe/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarises the midi files in OUT_PATH",
	Long:  `Summarises the midi files in OUT_PATH`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := analyzeOutDir(constants.GetOutDir())
		if err != nil {
			return err
		}
		fmt.Printf("numFiles: %v\n", r.numFiles)
		fmt.Printf("numBytes: %v\n", r.numBytes)
		fmt.Printf("numNotes: %v\n", util.Sum(r.notesPerFile))
		fmt.Printf("notesPerFile: %v\n", r.notesPerFile)
		if len(r.unreadable) > 0 {
			fmt.Printf("unreadable: %v\n", r.unreadable)
		}
		return nil
	},
}

type outDirReport struct {
	numFiles     int64
	numBytes     int64
	notesPerFile []int64
	unreadable   []string
}

func analyzeOutDir(dir string) (outDirReport, error) {
	var report outDirReport

	files, err := os.ReadDir(dir)
	if err != nil {
		return report, fmt.Errorf("could not read dir because: %w", err)
	}

	for _, f := range files {
		filename := f.Name()
		if f.IsDir() || !strings.HasSuffix(filename, ".mid") {
			continue
		}
		path := filepath.Join(dir, filename)
		info, err := f.Info()
		if err != nil {
			return report, err
		}
		report.numFiles += 1
		report.numBytes += info.Size()

		s, err := midi.ReadMidiFile(path)
		if err != nil {
			report.unreadable = append(report.unreadable, filename)
			continue
		}
		var notes int64
		for _, e := range midi.NoteEvents(s) {
			if e.On {
				notes++
			}
		}
		report.notesPerFile = append(report.notesPerFile, notes)
	}

	return report, nil
}
