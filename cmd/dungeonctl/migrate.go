package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/jui-pixel/aoop-2025-group12-Alchmey-RPG-game-sub001/internal/levelstore"
)

var (
	migrateSQLitePath string
	migratePgHost     string
	migratePgPort     int
	migratePgUser     string
	migratePgPassword string
	migratePgDatabase string
	migratePgSSLMode  string
	migrateDryRun     bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Copy stored levels from SQLite to PostgreSQL",
	Long: `Copies every level from a SQLite store into a PostgreSQL store.
Levels already present in the destination are skipped, so the command
can be re-run safely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := levelstore.Open(levelstore.DefaultConfig(migrateSQLitePath))
		if err != nil {
			return fmt.Errorf("opening SQLite store: %w", err)
		}
		defer src.Close()

		pgCfg := levelstore.Config{
			Driver:   "postgres",
			Postgres: levelstore.DefaultPostgresConfig(),
		}
		pgCfg.Postgres.Host = migratePgHost
		pgCfg.Postgres.Port = migratePgPort
		pgCfg.Postgres.User = migratePgUser
		pgCfg.Postgres.Password = migratePgPassword
		pgCfg.Postgres.Database = migratePgDatabase
		pgCfg.Postgres.SSLMode = migratePgSSLMode

		dst, err := levelstore.Open(pgCfg)
		if err != nil {
			return fmt.Errorf("opening PostgreSQL store: %w", err)
		}
		defer dst.Close()

		summaries, err := src.List()
		if err != nil {
			return fmt.Errorf("listing levels: %w", err)
		}

		log.Printf("Migrating %d levels from %s", len(summaries), migrateSQLitePath)
		if migrateDryRun {
			log.Println("DRY RUN MODE - No changes will be made")
		}

		var migrated, skipped int
		for _, sum := range summaries {
			if migrateDryRun {
				log.Printf("  would migrate %s (flow %s, seed %d)", sum.ID, sum.Flow, sum.Seed)
				migrated++
				continue
			}

			lvl, err := src.Load(sum.ID)
			if err != nil {
				return fmt.Errorf("loading level %s: %w", sum.ID, err)
			}
			if err := dst.Save(lvl); err != nil {
				if errors.Is(err, levelstore.ErrLevelExists) {
					skipped++
					continue
				}
				return fmt.Errorf("saving level %s: %w", sum.ID, err)
			}
			migrated++
		}

		log.Printf("Migration complete: %d migrated, %d already present", migrated, skipped)
		if migrateDryRun {
			log.Println("(DRY RUN - No actual changes were made)")
		}
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateSQLitePath, "sqlite", "data/levels.db", "path to the source SQLite store")
	migrateCmd.Flags().StringVar(&migratePgHost, "pg-host", "localhost", "PostgreSQL host")
	migrateCmd.Flags().IntVar(&migratePgPort, "pg-port", 5432, "PostgreSQL port")
	migrateCmd.Flags().StringVar(&migratePgUser, "pg-user", "dungeon", "PostgreSQL user")
	migrateCmd.Flags().StringVar(&migratePgPassword, "pg-password", "", "PostgreSQL password")
	migrateCmd.Flags().StringVar(&migratePgDatabase, "pg-database", "dungeon", "PostgreSQL database name")
	migrateCmd.Flags().StringVar(&migratePgSSLMode, "pg-sslmode", "disable", "PostgreSQL SSL mode")
	migrateCmd.Flags().BoolVar(&migrateDryRun, "dry-run", false, "show what would be migrated without making changes")
	rootCmd.AddCommand(migrateCmd)
}
