// Package migration creates the schema from the persistence models.
package migration

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/hys-retail/storedesk/internal/infrastructure/persistence/models"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// AutoMigrate creates or extends every table the service writes. It never
// drops columns.
func AutoMigrate(ctx context.Context, db *gorm.DB, log logger.Interface) error {
	all := models.All()
	log.Infow("starting database migration", "strategy", "gorm-automigrate", "models_count", len(all))

	if err := db.WithContext(ctx).AutoMigrate(all...); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Infow("database migration completed")
	return nil
}
