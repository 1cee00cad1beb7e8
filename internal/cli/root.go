// Package cli arma los comandos cobra del binario shelter.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shelter-records/internal/adapters/storage/sqlstore"
	"shelter-records/internal/platform/config"
	"shelter-records/internal/platform/logger"
)

var cfgFile string

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "shelter",
		Short: "Registros del refugio: API HTTP y mantenimiento de la base",
		Long: `shelter expone la API de registros del refugio (animales, historias
clínicas, adopciones, donantes, donaciones, voluntarios y cuentas).

Precedencia de configuración (mayor a menor):
  1. Flags (--addr, --db-driver, --db-dsn, --log-level)
  2. Variables SHELTER_* (database.dsn -> SHELTER_DATABASE_DSN)
  3. Archivo YAML (--config o ./shelter.yaml)
  4. Defaults`,
		SilenceUsage: true,
		// sin subcomando se comporta como serve
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "archivo de configuración (default ./shelter.yaml si existe)")
	root.PersistentFlags().String("addr", "", "dirección de escucha (default :8080)")
	root.PersistentFlags().String("db-driver", "", "sqlite | postgres")
	root.PersistentFlags().String("db-dsn", "", "DSN de la base")
	root.PersistentFlags().String("log-level", "", "debug | info | warn | error")

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())
	return root
}

// Execute corre el comando raíz; el exit code lo decide main.
func Execute() error {
	return NewRootCmd().Execute()
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
		Output: os.Stdout,
	})
}

func openDB(ctx context.Context, cfg config.Config) (*sqlstore.DB, error) {
	dialect, err := sqlstore.ParseDialect(cfg.Database.Driver)
	if err != nil {
		return nil, err
	}
	return sqlstore.Open(ctx, sqlstore.Options{
		Dialect:      dialect,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		MaxIdleConns: cfg.Database.MaxIdleConns,
	})
}
