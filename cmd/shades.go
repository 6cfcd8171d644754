package cmd

import (
	"github.com/mrkndrei/hexlab/palette"
	"github.com/mrkndrei/hexlab/theme"
	"github.com/spf13/cobra"
)

var shadesJSON bool

// shadesCmd represents the shades command
var shadesCmd = &cobra.Command{
	Use:   "shades <hex>",
	Short: "Derives the 50 to 900 shades of a color",
	Long: `Derives ten shades (50 to 900) from a color. The shade closest to the
input is replaced by the input itself and marked with '*'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, ok := palette.Generate(args[0])
		if !ok {
			return invalidColor(args[0])
		}

		if shadesJSON {
			return writeJSON(cmd.OutOrStdout(), set)
		}
		theme.Print(cmd.OutOrStdout(), set, plain(cmd))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shadesCmd)

	shadesCmd.Flags().BoolVar(&shadesJSON, "json", false, "print the shades as JSON")
}
