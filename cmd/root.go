package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// jsonOut switches command output to machine-readable JSON.
	jsonOut bool
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "logsreview",
	Short: "Summarize errors in log files, directories, and archives.",
	Long: `logsreview scans a log file, a directory tree, or a zip archive,
classifies lines against a built-in error-pattern catalog, and prints a
ranked summary: counts per category, the most repeated messages, and a
bounded list of sample findings with remediation suggestions.

Run 'logsreview scan <path>' for a one-shot report, or
'logsreview serve' for the local drag-and-drop web app.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.logsreview.yaml or $HOME/.logsreview.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "emit machine-readable JSON instead of text")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func isJSON() bool {
	return viper.GetBool("json")
}
