package postgres

import (
	"context"
	"fmt"

	"clientCompass/domain"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{
		DB: db,
	}
}

func (r *TransactionRepository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var transactions []domain.Transaction
	if err := r.DB.WithContext(ctx).Order("id").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w", err)
	}

	return transactions, nil
}

// DistinctClientIDs returns the ids of clients with at least one transaction.
func (r *TransactionRepository) DistinctClientIDs(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []string
	err := r.DB.WithContext(ctx).
		Model(&domain.Transaction{}).
		Distinct("client_id").
		Pluck("client_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transacted client ids: %w", err)
	}

	return ids, nil
}

func (r *TransactionRepository) ReplaceAll(ctx context.Context, transactions []domain.Transaction) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&domain.Transaction{}).Error; err != nil {
			return fmt.Errorf("failed to clear transactions: %w", err)
		}

		if len(transactions) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(transactions, 500).Error; err != nil {
			return fmt.Errorf("failed to insert transactions: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace transactions: %w", err)
	}

	return nil
}
