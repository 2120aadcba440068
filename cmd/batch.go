package cmd

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/jsphweid/barscribe/constants"
	"github.com/jsphweid/barscribe/file"
	"github.com/jsphweid/barscribe/tune"
	"github.com/jsphweid/barscribe/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(batchCmd)
}

var batchCmd = &cobra.Command{
	Use:   "batch <dir> [max]",
	Short: "Exports every tune file under a directory",
	Long:  `Recreates OUT_PATH and exports every tune file under dir into it.`,
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 2 {
			arg1, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			maxNum = arg1
		}

		failed, err := batch(args[0], maxNum)
		if err != nil {
			return err
		}
		if failed > 0 {
			return fmt.Errorf("%d tunes could not be exported", failed)
		}
		return nil
	},
}

// batch returns how many tunes were skipped because of errors.
func batch(dir string, maxNum int) (int, error) {
	if err := util.RecreateOutputDir(); err != nil {
		return 0, err
	}
	paths, err := util.GatherAllTunePaths(dir, maxNum)
	if err != nil {
		return 0, err
	}
	tuneNumMap := file.CreateTuneNumMap(paths)

	failed := 0
	keys := util.GetSortedKeys(tuneNumMap)
	for i, num := range keys {
		path := tuneNumMap[num]
		fmt.Printf("Processing %v of %v tunes\n", i+1, len(keys))
		t, err := tune.Load(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			failed++
			continue
		}
		out := filepath.Join(constants.GetOutDir(), file.MidiName(num, path))
		if _, err := exportTune(t, out, 0, 0); err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			failed++
		}
	}
	return failed, nil
}
