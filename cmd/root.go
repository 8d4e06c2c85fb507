package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"hotel-loyalty/pkg/database"
	"hotel-loyalty/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hotel-loyalty",
		Short:         "Hotel booking and loyalty API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "path to the .env file")

	rootCmd.AddCommand(
		serveCmd(),
		migrateCmd(),
		seedCmd(),
	)

	return rootCmd
}

// Execute runs the CLI; with no subcommand the API server starts.
func Execute() {
	rootCmd := newRootCmd()
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type appEnv struct {
	config *utils.Config
	logger *zap.Logger
	db     database.PgxIface
}

func (rt *appEnv) Close() {
	rt.db.Close()
	_ = rt.logger.Sync()
}

// bootstrap loads config, builds the logger and connects to PostgreSQL.
func bootstrap() (*appEnv, error) {
	config, err := utils.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}

	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return nil, fmt.Errorf("connect database: %w", err)
	}

	logger.Info("Database connected successfully",
		zap.String("host", config.Database.Host),
		zap.String("database", config.Database.Name))

	return &appEnv{config: config, logger: logger, db: db}, nil
}
