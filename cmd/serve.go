package cmd

import (
	"github.com/mrkndrei/hexlab/api"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves conversions and shades as a JSON API",
	Long: `Serves conversions and shades as a JSON API:

  GET /v1/colors?hex=34a1eb
  GET /v1/colors/random
  GET /v1/shades?hex=34a1eb
  GET /v1/contrast?hex=34a1eb`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := api.NewApplication(api.Config{
			Addr: viper.GetString("serve.addr"),
		})
		return app.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default :8080)")

	viper.BindPFlag("serve.addr", serveCmd.Flags().Lookup("addr"))
}
