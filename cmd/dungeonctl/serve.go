package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/config"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/levelstore"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/logger"
	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/server"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the level generation service",
	Long: `Serves level generation over HTTP and WebSocket. Generated levels can
be saved to the configured store and fetched back by ID.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srvCfg, err := config.LoadServerConfig(serveConfigPath)
		if err != nil {
			logger.Warning("Failed to load server config, using defaults", "path", serveConfigPath, "error", err)
		}

		s := server.NewServer(genCfg, srvCfg)

		store, err := levelstore.Open(storeConfig(srvCfg.Database))
		if err != nil {
			return fmt.Errorf("opening level store: %w", err)
		}
		defer store.Close()
		s.SetStore(store)
		logger.Info("Level store ready", "driver", srvCfg.Database.Driver)

		if len(srvCfg.WebSocket.AllowedOrigins) == 0 {
			logger.Info("WebSocket CORS policy", "mode", "same-origin")
		} else if len(srvCfg.WebSocket.AllowedOrigins) == 1 && srvCfg.WebSocket.AllowedOrigins[0] == "*" {
			logger.Warning("WebSocket CORS allows all origins (not recommended for production)")
		} else {
			logger.Info("WebSocket CORS policy", "allowed_origins", srvCfg.WebSocket.AllowedOrigins)
		}

		go func() {
			if err := s.Start(); err != nil {
				log.Fatalf("Server error: %v", err)
			}
		}()

		logger.Info("Press Ctrl+C to shutdown")

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			return err
		}
		logger.Info("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "server-config", "data/server.yaml", "path to server config YAML file")
	rootCmd.AddCommand(serveCmd)
}

// storeConfig maps the server's database section onto store settings.
func storeConfig(db config.DatabaseConfig) levelstore.Config {
	cfg := levelstore.Config{
		Driver:     db.Driver,
		SQLitePath: db.SQLitePath,
		Postgres:   levelstore.DefaultPostgresConfig(),
	}
	if db.Postgres.Host != "" {
		cfg.Postgres.Host = db.Postgres.Host
	}
	if db.Postgres.Port != 0 {
		cfg.Postgres.Port = db.Postgres.Port
	}
	cfg.Postgres.User = db.Postgres.User
	cfg.Postgres.Password = db.Postgres.Password
	cfg.Postgres.Database = db.Postgres.Database
	if db.Postgres.SSLMode != "" {
		cfg.Postgres.SSLMode = db.Postgres.SSLMode
	}
	return cfg
}
