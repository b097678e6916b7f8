package cli

import (
	"fmt"

	"github.com/alanmeadows/sheetsmart/internal/config"
	"github.com/alanmeadows/sheetsmart/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	appConfig  *config.Config

	rootCmd = &cobra.Command{
		Use:   "sheetsmart",
		Short: "Ask an AI model about spreadsheet data and append its answer",
		Long: `SheetSmart reads a cell range from a Google Sheet (or a local .xlsx
workbook), sends it to a chat model together with your prompt, shows the
answer and can append the first comma-separated row of the answer back
to the sheet with a highlighted background.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose/debug output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an extra JSONC config file")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose)
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg
		return nil
	}

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
