package postgres

import (
	"context"
	"fmt"

	"clientCompass/domain"

	"gorm.io/gorm"
)

type ActionRepository struct {
	DB *gorm.DB
}

func NewActionRepository(db *gorm.DB) *ActionRepository {
	return &ActionRepository{
		DB: db,
	}
}

func (r *ActionRepository) FindAll(ctx context.Context) ([]domain.Action, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var actions []domain.Action
	if err := r.DB.WithContext(ctx).Order("id").Find(&actions).Error; err != nil {
		return nil, fmt.Errorf("failed to find actions: %w", err)
	}

	return actions, nil
}

func (r *ActionRepository) ReplaceAll(ctx context.Context, actions []domain.Action) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Action{}).Error; err != nil {
			return fmt.Errorf("failed to clear actions: %w", err)
		}

		if len(actions) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(actions, 500).Error; err != nil {
			return fmt.Errorf("failed to insert actions: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace actions: %w", err)
	}

	return nil
}
