package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsphweid/barscribe/abc"
	"github.com/jsphweid/barscribe/bar"
	"github.com/spf13/cobra"
)

var (
	renderLang  string
	renderKey   string
	renderMeter string
)

func init() {
	renderCmd.Flags().StringVarP(&renderLang, "lang", "l", "us", "notation language (us, fr)")
	renderCmd.Flags().StringVarP(&renderKey, "key", "k", "C", "key of the first bar")
	renderCmd.Flags().StringVarP(&renderMeter, "meter", "m", "4/4", "meter of the first bar")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <notation>",
	Short: "Parses notation and prints the bars",
	Long: `Parses notation and prints the bars, e.g.

  barscribe render "GGGA | B2A2 | GBAA | G3Z"
  barscribe render --lang fr "SOL SOL SOL LA | SI2 LA2"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bars, err := parseNotation(strings.Join(args, " "), renderLang, renderKey, renderMeter)
		printBars(os.Stdout, bars)
		return err
	},
}

func parseNotation(notation, lang, key, meter string) ([]*bar.Bar, error) {
	l, err := abc.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	m, err := bar.ParseMeter(meter)
	if err != nil {
		return nil, err
	}
	if key == "" {
		key = "C"
	}
	return abc.ParseWith(notation, l, key, m)
}

func printBars(w io.Writer, bars []*bar.Bar) {
	for i, b := range bars {
		fmt.Fprintf(w, "bar %d (%v %v): %v\n", i+1, b.Key, b.Meter, b)
	}
}
