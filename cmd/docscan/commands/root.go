// Package commands implements the docscan command line.
package commands

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"docscan/internal/config"
	"docscan/internal/logger"
)

var (
	logLevel string
	cfg      *config.Config
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "docscan",
	Short: "Classify and extract fields from Pakistani identity documents",
	Long: `docscan classifies OCR text as a CNIC, Domicile, PHC or PMDC document
and extracts its fields with a text-generation provider, falling back to
pattern matching when the provider is unavailable.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}
		log = logger.NewWithWriter(cfg.Log, "docscan", os.Stderr)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override DOCSCAN_LOG_LEVEL")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// readInput reads the named file, or stdin when path is "-".
func readInput(in io.Reader, path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(in)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
