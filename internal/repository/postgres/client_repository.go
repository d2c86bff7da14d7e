package postgres

import (
	"context"
	"fmt"

	"clientCompass/domain"

	"gorm.io/gorm"
)

type ClientRepository struct {
	DB *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{
		DB: db,
	}
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]domain.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var clients []domain.Client
	if err := r.DB.WithContext(ctx).Order("id").Find(&clients).Error; err != nil {
		return nil, fmt.Errorf("failed to find clients: %w", err)
	}

	return clients, nil
}

// ReplaceAll swaps the client table contents for a fresh dataset load.
func (r *ClientRepository) ReplaceAll(ctx context.Context, clients []domain.Client) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Client{}).Error; err != nil {
			return fmt.Errorf("failed to clear clients: %w", err)
		}

		if len(clients) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(clients, 500).Error; err != nil {
			return fmt.Errorf("failed to insert clients: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace clients: %w", err)
	}

	return nil
}
