package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/frahmantamala/attendance-system/internal/seed"
	"github.com/frahmantamala/attendance-system/pkg/logger"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a sample organisation for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}
		slogger := logger.Init(cfg.Observability.Logging.Format, cfg.Observability.Logging.Level)

		db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{
			Logger: gormLogger.New(
				log.Default(),
				gormLogger.Config{
					SlowThreshold:             time.Second,
					LogLevel:                  gormLogger.Warn,
					IgnoreRecordNotFoundError: true,
				},
			),
		})
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		seeder := seed.New(db, slogger)
		ctx := cmd.Context()

		if clearData {
			if err := seeder.Clear(ctx); err != nil {
				log.Fatalf("failed to clear data: %v", err)
			}
			fmt.Println("Cleared existing data")
		}

		summary, err := seeder.Seed(ctx)
		if err != nil {
			log.Fatalf("failed to seed: %v", err)
		}
		if summary.Skipped {
			fmt.Println("Sample data already present; run with --clear to reseed")
			return
		}
		fmt.Printf("Seeded %d people, %d employees, %d departments, %d leave types and %d attendance entries\n",
			summary.People, summary.Employees, summary.Departments, summary.Leaves, summary.EmployeeAttendances)
	},
}
