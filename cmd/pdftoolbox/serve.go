package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/pdftoolbox/pdftoolbox/docs/swagger" // register OpenAPI spec
	"github.com/pdftoolbox/pdftoolbox/internal/config"
	"github.com/pdftoolbox/pdftoolbox/internal/home"
	"github.com/pdftoolbox/pdftoolbox/internal/server"
	"github.com/pdftoolbox/pdftoolbox/internal/server/endpoints"
)

var (
	serveHost string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PDF Toolbox server",
	Long: `Start the PDF Toolbox HTTP server.

The server provides:
  - /health             - Basic server health check
  - /ready              - Readiness check
  - /status             - Detailed status including rate limiter state
  - /api/merge          - Merge uploaded PDFs
  - /api/delete-pages   - Delete pages from a PDF
  - /api/extract-pages  - Extract pages into a new PDF
  - /api/info           - Inspect an uploaded PDF
  - /swagger            - Interactive API documentation

Examples:
  pdftoolbox serve                    # Start on default port 8080
  pdftoolbox serve --port 3000        # Start on custom port
  pdftoolbox serve --host 0.0.0.0     # Bind to all interfaces`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		cfgPath := cfgFile
		if cfgPath == "" && h.ConfigExists() {
			cfgPath = h.ConfigPath()
		}
		cfgMgr, err := config.NewManager(cfgPath)
		if err != nil {
			return err
		}
		cfgMgr.WatchConfig()
		cfg := cfgMgr.Get()

		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel(cfg.LogLevel),
		}))

		host := serveHost
		if !cmd.Flags().Changed("host") && cfg.Server.Host != "" {
			host = cfg.Server.Host
		}
		port := servePort
		if !cmd.Flags().Changed("port") && cfg.Server.Port != "" {
			port = cfg.Server.Port
		}

		srv, err := server.New(server.Config{
			Host:            host,
			Port:            port,
			ConfigManager:   cfgMgr,
			Logger:          logger,
			Home:            h,
			SwaggerSpecPath: endpoints.GetSwaggerSpecPath(),
		})
		if err != nil {
			return err
		}

		// Start server (blocks until shutdown)
		return srv.Start(ctx)
	},
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "127.0.0.1", "Host to bind to")
	serveCmd.Flags().StringVar(&servePort, "port", "8080", "Port to listen on")

	rootCmd.AddCommand(serveCmd)
}
