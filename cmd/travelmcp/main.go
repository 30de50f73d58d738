// Command travelmcp runs the travel-search MCP server over the hybrid
// SSE/HTTP POST transport.
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/voyagehq/travelmcp/catalog"
	"github.com/voyagehq/travelmcp/config"
	"github.com/voyagehq/travelmcp/logx"
	"github.com/voyagehq/travelmcp/server"
	"github.com/voyagehq/travelmcp/transport/sse"
	"github.com/voyagehq/travelmcp/travel"
	"github.com/voyagehq/travelmcp/travel/rapidapi"
)

const serverName = "travel-mcp-server"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logx.NewZapLogger(cfg.IsProduction())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cat, err := catalog.New("ui-components", logger)
	if err != nil {
		logger.Error("Failed to build tool catalog: %v", err)
		os.Exit(1)
	}

	client := rapidapi.NewClient(cfg.RapidAPIKey, logger)
	search := travel.NewService(client, client, logger)

	core := server.NewServer(serverName, cat, search,
		server.WithLogger(logger),
		server.WithMockModeDisclaimer(cfg.RapidAPIKey == ""),
	)

	transport := sse.NewSSEServer(core, sse.SSEServerOptions{Logger: logger})

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           transport,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       10 * time.Minute,
	}

	logger.Info("%s listening on %s", serverName, addr)
	logger.Info("SSE stream:       GET  http://localhost:%d/mcp", cfg.Port)
	logger.Info("Message endpoint: POST http://localhost:%d/mcp/messages?sessionId=...", cfg.Port)
	if cfg.RapidAPIKey == "" {
		logger.Warn("RAPIDAPI_KEY not set, serving mock data for all searches")
	}

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("HTTP server error: %v", err)
		os.Exit(1)
	}
}
