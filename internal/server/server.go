// Package server hosts the local drag-and-drop web app. It is a renderer
// over the same report pipeline the CLI uses: uploads are turned into
// sources, folded through one aggregator, and returned as a Report — no
// aggregation logic lives here.
package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/analyze"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/coralogix"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/patterns"
	"github.com/itayornshtein-jpg/itay-logs-reviewer/internal/source"
	"github.com/spf13/afero"
)

// Config wires the server to the analysis pipeline.
type Config struct {
	Host        string
	Port        int
	Catalog     patterns.Catalog
	ScanOptions source.Options
	ReportOpts  analyze.Options
	Coralogix   *coralogix.Client
	// Verbose enables request logging to stderr.
	Verbose bool
}

type Server struct {
	cfg       Config
	collector *source.Collector
	history   *historyRing
	origins   map[string]struct{}
	server    *http.Server
}

// New builds the server and its routes. It does not start listening.
func New(cfg Config) *Server {
	if cfg.Catalog == nil {
		cfg.Catalog = patterns.Default()
	}

	s := &Server{
		cfg:       cfg,
		// Uploads arrive in memory; the collector's filesystem is only a
		// placeholder for the archive walker.
		collector: source.NewCollector(afero.NewMemMapFs(), cfg.ScanOptions),
		history:   newHistoryRing(historyLimit),
	}

	// The app is same-origin in normal use; the allow list exists for
	// dev setups serving the page from another local port.
	s.origins = map[string]struct{}{
		fmt.Sprintf("http://%s:%d", cfg.Host, cfg.Port): {},
		fmt.Sprintf("http://localhost:%d", cfg.Port):    {},
		fmt.Sprintf("http://127.0.0.1:%d", cfg.Port):    {},
	}

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:           s.registerRoutes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Addr returns the address the server binds to.
func (s *Server) Addr() string {
	return s.server.Addr
}

// Start runs the listener in its own goroutine, reporting a failed
// listen through errChan.
func (s *Server) Start(wg *sync.WaitGroup, errChan chan<- error) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("web app server error: %w", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
