package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/mrkndrei/hexlab/color"
	"github.com/mrkndrei/hexlab/theme"
	"github.com/spf13/cobra"
)

var (
	convertRandom bool
	convertJSON   bool
	convertAlpha  float64
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert [hex]",
	Short: "Shows a hex color as RGB, HSL and CMYK",
	Long: `Shows a hex color as RGB, HSL and CMYK together with the text color
that reads best on top of it. The color may be given with or without '#',
as 3 or 6 digits in any case. With --random a random color is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := pickInput(args, convertRandom)
		if err != nil {
			return err
		}

		info, ok := color.Inspect(raw)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "HEX   invalid")
			return invalidColor(raw)
		}

		if convertJSON {
			return writeJSON(cmd.OutOrStdout(), info)
		}
		printInfo(cmd.OutOrStdout(), info, convertAlpha, plain(cmd))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().BoolVarP(&convertRandom, "random", "r", false, "use a random color")
	convertCmd.Flags().BoolVar(&convertJSON, "json", false, "print the result as JSON")
	convertCmd.Flags().Float64VarP(&convertAlpha, "alpha", "a", 1, "alpha for the CSS rgb()/rgba() string")
}

func printInfo(w io.Writer, info color.Info, alpha float64, plain bool) {
	if !plain {
		fmt.Fprintln(w, theme.Block(info.Hex))
	}
	fmt.Fprintf(w, "HEX   %s\n", info.Hex)
	fmt.Fprintf(w, "RGB   %d, %d, %d\n", info.RGB.R, info.RGB.G, info.RGB.B)
	fmt.Fprintf(w, "CSS   %s\n", info.RGB.CSS(alpha))
	fmt.Fprintf(w, "HSL   %s\n", info.HSL)
	fmt.Fprintf(w, "CMYK  %s\n", info.CMYK)
	fmt.Fprintf(w, "TEXT  %s\n", info.Contrast)
}

// pickInput returns the color argument, or a random color if asked for.
func pickInput(args []string, random bool) (string, error) {
	switch {
	case random && len(args) > 0:
		return "", fmt.Errorf("give either a color or --random, not both")
	case random:
		return string(color.Random(rand.New(rand.NewSource(time.Now().UnixNano())))), nil
	case len(args) == 0:
		return "", fmt.Errorf("missing color argument")
	}
	return args[0], nil
}

func invalidColor(raw string) error {
	return fmt.Errorf("'%s' is not a valid hex color", raw)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
