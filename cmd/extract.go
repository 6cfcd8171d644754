package cmd

import (
	"fmt"

	"github.com/mrkndrei/hexlab/image"
	"github.com/mrkndrei/hexlab/palette"
	"github.com/mrkndrei/hexlab/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var extractShades bool

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <image>",
	Short: "Finds the dominant colors of an image",
	Long: `Finds the dominant colors of a PNG or JPEG image, most common first.
With --shades the palette of the most common color is printed too.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, e := image.Extract(args[0], viper.GetInt("extract.count"))
		if e != nil {
			return e
		}
		ccl := ex.Colors

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %dx%d\n", ex.Format, ex.Bounds.Dx(), ex.Bounds.Dy())
		total := 0
		for _, cc := range ccl {
			total += cc.Count
		}
		for _, cc := range ccl {
			h := cc.Color.Hex()
			if plain(cmd) {
				fmt.Fprintf(w, "%s %5.1f%%\n", h, 100*float64(cc.Count)/float64(total))
			} else {
				fmt.Fprintf(w, "%s %s %5.1f%%\n", theme.Block(h), h, 100*float64(cc.Count)/float64(total))
			}
		}

		if extractShades {
			set, _ := palette.Generate(string(ccl[0].Color.Hex()))
			fmt.Fprintln(w)
			theme.Print(w, set, plain(cmd))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().IntP("count", "n", 0, "number of colors to extract (default 5)")
	extractCmd.Flags().BoolVarP(&extractShades, "shades", "s", false, "also print the shades of the dominant color")

	viper.BindPFlag("extract.count", extractCmd.Flags().Lookup("count"))
}
