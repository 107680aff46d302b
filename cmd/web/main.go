package main

import (
	"fmt"
	"net"
	"os"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/server"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/config"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/services/portfolio"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/store/duckdb"
	duckdbproject "github.com/Marcus-dot/project-dashboard-sub000/pkg/store/duckdb/project"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the portfolio dashboard API server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "",
		"Path to the application config file (defaults apply when omitted)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := duckdb.NewDB(duckdb.Settings{
		DbPath: cfg.Database.Path,
	})
	if err != nil {
		return fmt.Errorf("failed to create DuckDB instance: %w", err)
	}

	projectStore, err := duckdbproject.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create project store: %w", err)
	}
	manager := portfolio.NewManager(db, projectStore)

	addr := net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)

	api := server.NewWebAPI(server.Config{
		Addr:            addr,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Dependencies: server.Dependencies{
			Portfolio: manager,
			Logger:    logger,
		},
	})

	return api.Start()
}
