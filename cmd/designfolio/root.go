package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/designfolio/internal/config"
	"github.com/designfolio/internal/db"
	"github.com/designfolio/internal/logging"
)

// Version is overridden at build time with -ldflags "-X main.Version=v1.2.3".
var Version = "dev"

// NewRootCmd builds the CLI. Subcommands are created by factories so no
// state lives in package variables.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "designfolio",
		Short:         "Portfolio site and content admin",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

// bootstrap loads and validates configuration, then opens the logger and
// the database.
func bootstrap() (config.AppConfig, *zap.Logger, *gorm.DB, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return cfg, nil, nil, err
	}

	log, err := logging.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return cfg, nil, nil, err
	}

	level := logger.Warn
	if cfg.IsProduction() {
		level = logger.Error
	}
	gdb, err := db.Open(cfg.DatabaseURL, level)
	if err != nil {
		log.Sync()
		return cfg, nil, nil, err
	}
	return cfg, log, gdb, nil
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the content tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, gdb, err := bootstrap()
			if err != nil {
				return err
			}
			defer log.Sync()

			if err := db.Migrate(gdb); err != nil {
				return err
			}
			log.Info("database migrated")
			return nil
		},
	}
}
