package postgres

import (
	"context"
	"fmt"

	"clientCompass/domain"

	"gorm.io/gorm"
)

type IngestEventRepository struct {
	DB *gorm.DB
}

func NewIngestEventRepository(db *gorm.DB) *IngestEventRepository {
	return &IngestEventRepository{
		DB: db,
	}
}

func (r *IngestEventRepository) SaveEvent(ctx context.Context, event domain.IngestEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to save ingest event: %w", err)
	}

	return nil
}
