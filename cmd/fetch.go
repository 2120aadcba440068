package cmd

import (
	"fmt"

	"github.com/jsphweid/barscribe/db"
	"github.com/jsphweid/barscribe/tune"
	"github.com/spf13/cobra"
)

var fetchOut string

func init() {
	fetchCmd.Flags().StringVarP(&fetchOut, "out", "o", "", "output path (default: a new file in OUT_PATH)")
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(storeCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch <title>",
	Short: "Exports a tune stored in DynamoDB",
	Long:  `Exports a tune stored in the barscribe-tunes table at DYNAMO_ENDPOINT`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.New()
		if err != nil {
			return err
		}
		t, err := store.GetTune(args[0])
		if err != nil {
			return err
		}
		path, err := exportTune(t, fetchOut, 0, 0)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %v to %v\n", t.Title, path)
		return nil
	},
}

var storeCmd = &cobra.Command{
	Use:   "store <tune.yaml>...",
	Short: "Stores tune files in DynamoDB",
	Long:  `Stores tune files in the barscribe-tunes table, keyed by title`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := db.New()
		if err != nil {
			return err
		}
		for _, path := range args {
			t, err := tune.Load(path)
			if err != nil {
				return err
			}
			// catch notation errors before they are stored
			if _, err := tune.Render(t); err != nil {
				return fmt.Errorf("%v: %w", path, err)
			}
			if err := store.PutTune(t); err != nil {
				return err
			}
			fmt.Printf("Stored %v\n", t.Title)
		}
		return nil
	},
}
