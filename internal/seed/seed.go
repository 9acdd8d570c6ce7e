package seed

import (
	"context"
	"fmt"

	"github.com/learnanyskills/backend/internal/models"
	"go.uber.org/zap"
)

// Repository is the interface that wraps the catalog initialization write
type Repository interface {
	// Method SeedIfEmpty insert the given courses and lessons in one transaction unless any course row exists.
	//
	// Returns true when the catalog was inserted.
	SeedIfEmpty(ctx context.Context, seeds []models.SeedCourse) (bool, error)
}

// Run loads the initial catalog into an empty database
//
// A database that already holds courses is left untouched.
func Run(ctx context.Context, repo Repository, logger *zap.Logger) error {
	catalog := Catalog()

	seeded, err := repo.SeedIfEmpty(ctx, catalog)
	if err != nil {
		logger.Error("failed to seed catalog", zap.Error(err))
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	if !seeded {
		logger.Info("Catalog already initialized, skipping seed")
		return nil
	}

	lessons := 0
	for _, c := range catalog {
		lessons += len(c.Lessons)
	}
	logger.Info("Catalog seeded", zap.Int("courses", len(catalog)), zap.Int("lessons", lessons))
	return nil
}
