package cmd

import (
	"fmt"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/analyze"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/patterns"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/source"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var scanYAML bool

// scanCmd represents the scan command.
var scanCmd = &cobra.Command{
	Use:   "scan <path>",
	Short: "Scan a log file, directory, or zip archive",
	Long: `Scan reads every log source under the given path, classifies lines
against the pattern catalog, and prints a ranked error summary.

The path may be a single text file, a directory (all contained log files
become sources), or a zip archive (every entry becomes a source).

Examples:
  logsreview scan service.log
  logsreview scan /var/log/myapp --no-recursive
  logsreview scan support-bundle.zip --json`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE:         runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().BoolVar(&scanYAML, "yaml", false, "emit the report as YAML")
	scanCmd.Flags().Bool("no-recursive", false, "do not descend into subdirectories")
	scanCmd.Flags().Bool("hidden", false, "include hidden files and directories")
	scanCmd.Flags().StringSlice("ext", nil, "log file extensions to scan (default .log,.txt,.out,.err)")
	scanCmd.Flags().Int("sample-limit", 0, "max sample findings to keep (default 20)")
	scanCmd.Flags().Int("top", 0, "max repeated messages to rank (default 10)")
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	opts := source.Options{
		Recursive:     cfg.Scan.Recursive,
		IncludeHidden: cfg.Scan.IncludeHidden,
		Extensions:    cfg.Scan.Extensions,
	}
	if noRecursive, _ := cmd.Flags().GetBool("no-recursive"); noRecursive {
		opts.Recursive = false
	}
	if hidden, _ := cmd.Flags().GetBool("hidden"); hidden {
		opts.IncludeHidden = true
	}
	if exts, _ := cmd.Flags().GetStringSlice("ext"); len(exts) > 0 {
		opts.Extensions = exts
	}

	collector := source.NewCollector(afero.NewOsFs(), opts)
	sources, err := collector.Collect(args[0])
	if err != nil {
		return fmt.Errorf("collect log sources: %w", err)
	}
	LogError(fmt.Sprintf("collected %d source(s) from %s", len(sources), args[0]), nil)

	reportOpts := analyze.Options{
		SampleLimit: cfg.Report.SampleLimit,
		TopMessages: cfg.Report.TopMessages,
	}
	if n, _ := cmd.Flags().GetInt("sample-limit"); n > 0 {
		reportOpts.SampleLimit = n
	}
	if n, _ := cmd.Flags().GetInt("top"); n > 0 {
		reportOpts.TopMessages = n
	}

	report := analyze.Analyze(sources, patterns.Default(), reportOpts)

	switch {
	case isJSON():
		return printJSON(report)
	case scanYAML:
		return printYAML(report)
	default:
		fmt.Print(ui.RenderReport(report))
	}

	if viper.GetBool("verbose") && report.TotalFindings == 0 {
		LogError("scan finished with zero findings", nil)
	}
	return nil
}
