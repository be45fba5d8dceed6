package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nhdewitt/tiny-httpserver/internal/config"
	"github.com/nhdewitt/tiny-httpserver/internal/logging"
	"github.com/nhdewitt/tiny-httpserver/internal/router"
	"github.com/nhdewitt/tiny-httpserver/internal/server"
	"github.com/nhdewitt/tiny-httpserver/internal/version"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	addr       string
	publicDir  string
	dataDir    string
	debug      bool
}

// NewRootCmd creates the root command. Running it starts the server and
// blocks until SIGINT or SIGTERM.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   version.AppName,
		Short: version.Description,
		Long: fmt.Sprintf(`%s - %s

Serves static pages from a content root, JSON from /api, and 404 for
everything else, one connection at a time.
`, version.AppName, version.Description),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.resolve(cmd)
			logging.InitGlobalLogger(opts.debug, cfg)
			logging.Debug("Debug logging enabled")
			if _, err := os.Stat(cfg.Content.PublicDir); err != nil {
				logging.Warn("Static content root is not readable, static pages will answer 404: " + cfg.Content.PublicDir)
			}

			rt := router.New(cfg.Content.PublicDir, cfg.Content.DataDir)
			srv, err := server.Serve(cfg.Server.Address, rt, server.Options{
				ReadBufferSize: cfg.Server.ReadBufferSize,
				ReadTimeout:    cfg.Server.ReadDeadline(),
			})
			if err != nil {
				logging.ErrorWith("Error starting server", map[string]interface{}{
					"address": cfg.Server.Address,
					"error":   err,
				})
				return fmt.Errorf("failed to start server: %w", err)
			}
			defer srv.Close()

			logging.InfoWith("Server started", map[string]interface{}{
				"address": srv.Addr().String(),
				"public":  cfg.Content.PublicDir,
				"data":    cfg.Content.DataDir,
			})

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			select {
			case <-sigChan:
			case <-cmd.Context().Done():
			}
			logging.Info("Server gracefully stopped")
			return nil
		},
	}

	rootCmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "path to YAML configuration file")
	rootCmd.Flags().StringVarP(&opts.addr, "addr", "a", "", "listen address (overrides config)")
	rootCmd.Flags().StringVar(&opts.publicDir, "public", "", "static content root (overrides config)")
	rootCmd.Flags().StringVar(&opts.dataDir, "data", "", "API data directory (overrides config)")
	rootCmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// resolve layers defaults, the config file, environment variables and
// explicitly set flags, in that order.
func (o *rootOptions) resolve(cmd *cobra.Command) *config.Config {
	var cfg *config.Config
	if o.configPath != "" {
		cfg = config.LoadOrDefault(o.configPath)
	} else {
		cfg = config.FromEnv()
	}

	if cmd.Flags().Changed("addr") {
		cfg.Server.Address = o.addr
	}
	if cmd.Flags().Changed("public") {
		cfg.Content.PublicDir = o.publicDir
	}
	if cmd.Flags().Changed("data") {
		cfg.Content.DataDir = o.dataDir
	}
	return cfg
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo())
		},
	}
}
