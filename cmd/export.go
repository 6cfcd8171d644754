package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/flosch/pongo2"
	"github.com/mrkndrei/hexlab/palette"
	"github.com/mrkndrei/hexlab/theme"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	exportTemplate string
	exportOut      string
	exportName     string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <hex>",
	Short: "Writes the shades of a color through a template",
	Long: `Writes the shades of a color through a template. Built-in formats are
css, scss and tailwind; --template renders a pongo2 template file instead.
Templates see name, prefix, base, selected, foreground, background,
shade50 to shade900 and the list shades (Step, Hex, RGB, HSL, Foreground,
Selected). pongo2 HTML-escapes template files unless they are wrapped in
{% autoescape off %}.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		set, ok := palette.Generate(args[0])
		if !ok {
			return invalidColor(args[0])
		}

		opts := map[string]interface{}{
			"prefix": viper.GetString("export.prefix"),
		}
		if exportName != "" {
			opts["name"] = exportName
		}

		o, e := render(set, opts, viper.GetString("export.format"), exportTemplate)
		if e != nil {
			return e
		}

		if exportOut == "" {
			fmt.Fprint(cmd.OutOrStdout(), o)
			return nil
		}
		return ioutil.WriteFile(exportOut, []byte(o), 0644)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("format", "f", "", "built-in format: css, scss or tailwind")
	exportCmd.Flags().StringP("prefix", "p", "", "variable prefix")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "pongo2 template file")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")
	exportCmd.Flags().StringVarP(&exportName, "name", "n", "", "palette name (default primary)")

	viper.BindPFlag("export.format", exportCmd.Flags().Lookup("format"))
	viper.BindPFlag("export.prefix", exportCmd.Flags().Lookup("prefix"))
}

// render executes the template file, or the built-in format if file is
// empty, with the theme of set.
func render(set palette.ShadeSet, opts map[string]interface{}, format, file string) (string, error) {
	t, e := theme.Create(set, opts)
	if e != nil {
		return "", e
	}

	var tpl *pongo2.Template
	if file != "" {
		tpl, e = pongo2.FromFile(file)
	} else {
		tpl, e = theme.Builtin(format)
	}
	if e != nil {
		return "", e
	}

	return t.Render(tpl)
}
