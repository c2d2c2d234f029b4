package cmd

import (
	"context"
	"fmt"

	"github.com/frahmantamala/attendance-system/db"
	"github.com/frahmantamala/attendance-system/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "to run the embedded db migrations",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "to rollback the latest version of sql migration")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(".")
	if err != nil {
		return err
	}
	log := logger.Init(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)

	conn, err := initDB(cfg.Database)
	if err != nil {
		return err
	}
	defer conn.Close()

	if migrateRollback {
		err = db.Rollback(ctx, conn.DB, db.DialectPostgres, log)
	} else {
		err = db.Migrate(ctx, conn.DB, db.DialectPostgres, log)
	}
	if err != nil {
		return err
	}

	version, err := db.Version(ctx, conn.DB, db.DialectPostgres)
	if err != nil {
		return err
	}
	fmt.Println("schema version:", version)
	return nil
}
