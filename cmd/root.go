/*
Copyright © 2026 mrkndrei

*/
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hexlab",
	Short: "Convert hex colors and derive shade palettes",
	Long: `hexlab converts a hex color into RGB, HSL and CMYK, picks a readable
text color for it and derives a ten step palette of shades (50 to 900).

  hexlab convert '#34a1eb'
  hexlab shades 1af
  hexlab export 34a1eb --format tailwind --name sky`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.hexlab.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "print plain text without truecolor swatches")

	viper.SetDefault("color", true)
	viper.SetDefault("serve.addr", ":8080")
	viper.SetDefault("export.format", "css")
	viper.SetDefault("export.prefix", "color")
	viper.SetDefault("extract.count", 5)
}

// initConfig reads in .env, the config file and HEXLAB_ environment variables.
func initConfig() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("reading .env: %v", err)
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			log.Fatal(err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigName(".hexlab")
	}

	viper.SetEnvPrefix("hexlab")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.Println("using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Fatal(err)
	}
}

// plain reports whether swatches should be printed without escape codes.
func plain(cmd *cobra.Command) bool {
	if off, _ := cmd.Flags().GetBool("no-color"); off {
		return true
	}
	return !viper.GetBool("color")
}
