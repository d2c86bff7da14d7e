package postgres

import (
	"context"
	"fmt"

	"clientCompass/domain"

	"gorm.io/gorm"
)

type UpliftRepository struct {
	DB *gorm.DB
}

func NewUpliftRepository(db *gorm.DB) *UpliftRepository {
	return &UpliftRepository{
		DB: db,
	}
}

// GetByAction returns positive-uplift predictions for an action ordered by
// uplift_pred DESC. Callers dedupe clients on top of this.
func (r *UpliftRepository) GetByAction(
	ctx context.Context,
	actionID string,
	limit int,
) ([]domain.UpliftPrediction, error) {

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 {
		limit = 10
	}

	var preds []domain.UpliftPrediction
	if err := r.DB.WithContext(ctx).
		Where("action_id = ? AND uplift_pred > 0", actionID).
		Order("uplift_pred DESC").
		Limit(limit).
		Find(&preds).Error; err != nil {
		return nil, fmt.Errorf("failed to query uplift_predictions: %w", err)
	}

	return preds, nil
}

func (r *UpliftRepository) ReplaceAll(ctx context.Context, preds []domain.UpliftPrediction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.UpliftPrediction{}).Error; err != nil {
			return fmt.Errorf("failed to clear uplift_predictions: %w", err)
		}

		if len(preds) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(preds, 500).Error; err != nil {
			return fmt.Errorf("failed to insert uplift_predictions: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace uplift_predictions: %w", err)
	}

	return nil
}
