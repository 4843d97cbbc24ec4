package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/analyze"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/coralogix"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/patterns"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/server"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/source"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local drag-and-drop web app",
	Long: `Serve starts a local web app where log files and zip archives can be
dropped for analysis. The page renders exactly the report that
'logsreview scan' prints; nothing is uploaded anywhere else.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("host", "127.0.0.1", "host to bind the web app to")
	serveCmd.Flags().Int("port", 8000, "port to bind the web app to")
	_ = viper.BindPFlag("server.host", serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	srv := server.New(server.Config{
		Host:    cfg.Server.Host,
		Port:    cfg.Server.Port,
		Catalog: patterns.Default(),
		ScanOptions: source.Options{
			Recursive:     cfg.Scan.Recursive,
			IncludeHidden: cfg.Scan.IncludeHidden,
			Extensions:    cfg.Scan.Extensions,
		},
		ReportOpts: analyze.Options{
			SampleLimit: cfg.Report.SampleLimit,
			TopMessages: cfg.Report.TopMessages,
		},
		Coralogix: coralogix.NewClient(cfg.Coralogix.Domain, cfg.Coralogix.APIKey),
		Verbose:   isVerbose(),
	})

	var wg sync.WaitGroup
	errChan := make(chan error, 1)
	srv.Start(&wg, errChan)

	fmt.Printf("Logs reviewer web app listening on http://%s\n", srv.Addr())
	fmt.Println("Press Ctrl+C to stop.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		wg.Wait()
		return err
	case <-stop:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shut down web app: %w", err)
	}
	wg.Wait()
	return nil
}
