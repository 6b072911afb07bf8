package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"

	"trivia-service/internal/config"
	pgstore "trivia-service/internal/infra/postgres"
)

// NewSeedCmd loads the bundled question fixture into Postgres.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with the bundled trivia questions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath)
		},
	}
}

func runSeed(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	categories := sampleCategories()
	questions := sampleQuestions()
	if err := pgstore.Seed(ctx, pool, categories, questions); err != nil {
		return err
	}
	log.Printf("seeded %d categories and %d questions", len(categories), len(questions))
	return nil
}
