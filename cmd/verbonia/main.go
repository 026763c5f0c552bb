// verbonia is a terminal roguelike.
//
// Usage:
//
//	verbonia                     - Play
//	verbonia map check <file>    - Validate a text map
//	verbonia map preview <file>  - Print a text map in colour
//
// Global flags:
//
//	--config <path>  - Config YAML (default: ~/.verbonia/config.yaml, ./configs/verbonia.yaml, built-in)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var flagConfig string

func main() {
	loadEnv(log.Default())

	// Set up OTEL environment variables from our .env variables
	setupOTelEnv()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "verbonia",
	Short: "Verbonia - a roguelike in your terminal",
	Long: `Verbonia is a terminal roguelike.

Controls:
  Arrows  - Move / choose
  Enter   - Confirm
  Esc     - Pause menu

Examples:
  verbonia
  verbonia --map ./maps/cave.txt
  verbonia map preview ./maps/cave.txt`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.Flags().StringVar(&flagMap, "map", "", "Path to a text map (overrides config)")

	rootCmd.AddCommand(mapCmd)
}

// loadEnv loads a .env file for local development. A missing file is not an error.
func loadEnv(logger *log.Logger) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn(".env file not loaded", "error", err)
	}
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is present
// and no endpoint has been configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_VERBONIA_API_KEY")
	if apiKey == "" || os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		return
	}

	dataset := os.Getenv("HONEYCOMB_VERBONIA_DATASET")
	if dataset == "" {
		dataset = "verbonia" // default dataset name
	}
	os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
