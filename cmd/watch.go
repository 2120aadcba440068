package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/jsphweid/barscribe/tune"
	"github.com/spf13/cobra"
)

var (
	watchOut   string
	watchDelay time.Duration
)

func init() {
	watchCmd.Flags().StringVarP(&watchOut, "out", "o", "", "output path (default: a new file in OUT_PATH per export)")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", 250*time.Millisecond, "quiet time after a save before exporting")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <tune.yaml>",
	Short: "Re-exports a tune file whenever it changes",
	Long:  `Re-exports a tune file whenever it changes. Bursts of saves are collapsed into one export.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return watch(ctx, args[0], watchDelay, func(path string) {
			t, err := tune.Load(path)
			if err != nil {
				fmt.Printf("Skipping export because: %v\n", err)
				return
			}
			out, err := exportTune(t, watchOut, 0, 0)
			if err != nil {
				fmt.Printf("Skipping export because: %v\n", err)
				return
			}
			fmt.Printf("Wrote %v\n", out)
		})
	},
}

// watch calls onChange once at start and then, debounced by delay, each
// time path is written or replaced.
func watch(ctx context.Context, path string, delay time.Duration, onChange func(string)) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	// watch the directory so a save that renames over path is still seen
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}

	debounced := debounce.New(delay)
	onChange(path)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			debounced(func() { onChange(path) })
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("Watching %v failed: %v\n", path, err)
		}
	}
}
