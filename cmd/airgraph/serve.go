package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lmcosta-dev/airgraph/internal/api"
)

var (
	serveHost       string
	servePort       int
	serveCORS       bool
	serveProduction bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the AirGraph API server",
	Long: `Start the AirGraph HTTP API server.

The server loads the route graph into memory on startup and exposes REST
endpoints for airport lookups, itinerary planning and network analysis.

Examples:
  airgraph serve
  airgraph serve --port 3000
  airgraph serve --host 0.0.0.0 --production`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveHost, "host", "", "host to bind to (default from config)")
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to listen on (default from config)")
	serveCmd.Flags().BoolVar(&serveCORS, "cors", true, "enable CORS")
	serveCmd.Flags().BoolVar(&serveProduction, "production", false, "enable production mode")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		slog.Info("received shutdown signal")
		cancel()
	}()

	g, db, err := openGraph()
	if err != nil {
		return err
	}
	defer db.Close()

	serverCfg := api.DefaultConfig
	serverCfg.Host = cfg.Server.Host
	serverCfg.Port = cfg.Server.Port
	serverCfg.RateLimit = cfg.Server.RateLimit

	if serveHost != "" {
		serverCfg.Host = serveHost
	}
	if servePort != 0 {
		serverCfg.Port = servePort
	}
	if cmd.Flags().Changed("cors") {
		serverCfg.EnableCORS = serveCORS
	}
	if cmd.Flags().Changed("production") {
		serverCfg.Production = serveProduction
	}

	server := api.New(g, serverCfg)

	fmt.Printf("Starting AirGraph API server on http://%s:%d\n", serverCfg.Host, serverCfg.Port)
	fmt.Println("\nAvailable endpoints:")
	fmt.Println("  GET /health                             - Health check")
	fmt.Println("  GET /api/v1/airports/:code              - Airport details")
	fmt.Println("  GET /api/v1/airports/:code/reachable    - Reachability within a layover budget")
	fmt.Println("  GET /api/v1/path?from=X&to=Y            - Plan itineraries")
	fmt.Println("  GET /api/v1/analysis/essential          - Essential airports")
	fmt.Println("  GET /api/v1/analysis/diameter           - Network diameter")
	fmt.Println("  GET /api/v1/analysis/top                - Busiest airports")
	fmt.Println("  GET /api/v1/search?q=X                  - Airport search")
	fmt.Println("\nPress Ctrl+C to stop")

	if err := server.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
