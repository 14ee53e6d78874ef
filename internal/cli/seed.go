package cli

import (
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"

	"kanzanso-wellness-service/internal/config"
	pgloader "kanzanso-wellness-service/internal/infra/postgres"
	"kanzanso-wellness-service/internal/questionbank"
)

// NewSeedCmd loads the embedded question catalog into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed quiz questions into Postgres",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Postgres.URL == "" {
				return fmt.Errorf("postgres url not configured")
			}
			pool, err := pgxpool.Connect(cmd.Context(), cfg.Postgres.URL)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pgloader.Seed(cmd.Context(), pool, questionbank.Catalog()); err != nil {
				return err
			}
			log.Printf("question catalog seeded")
			return nil
		},
	}
}
