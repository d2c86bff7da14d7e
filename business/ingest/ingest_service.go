package ingest

import (
	"context"
	"fmt"
	"io"

	"clientCompass/domain"
	"clientCompass/internal/repository/datafile"
	"clientCompass/pkg/logger"
	"clientCompass/pkg/metrics"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ---- Repository interfaces ----

type ClientRepository interface {
	ReplaceAll(ctx context.Context, clients []domain.Client) error
}

type TransactionRepository interface {
	ReplaceAll(ctx context.Context, transactions []domain.Transaction) error
}

type ActionRepository interface {
	ReplaceAll(ctx context.Context, actions []domain.Action) error
}

type UpliftRepository interface {
	ReplaceAll(ctx context.Context, preds []domain.UpliftPrediction) error
}

type IngestEventRepository interface {
	SaveEvent(ctx context.Context, event domain.IngestEvent) error
}

// SnapshotInvalidator drops any cached view of the previous dataset.
type SnapshotInvalidator interface {
	Invalidate()
}

type Service struct {
	clientRepo ClientRepository
	txnRepo    TransactionRepository
	actionRepo ActionRepository
	upliftRepo UpliftRepository
	eventRepo  IngestEventRepository
	snapshots  SnapshotInvalidator
}

func NewService(
	clientRepo ClientRepository,
	txnRepo TransactionRepository,
	actionRepo ActionRepository,
	upliftRepo UpliftRepository,
	eventRepo IngestEventRepository,
	snapshots SnapshotInvalidator,
) *Service {
	return &Service{
		clientRepo: clientRepo,
		txnRepo:    txnRepo,
		actionRepo: actionRepo,
		upliftRepo: upliftRepo,
		eventRepo:  eventRepo,
		snapshots:  snapshots,
	}
}

// LoadDir reads the dataset CSVs from a directory and replaces the stored
// tables with them.
func (s *Service) LoadDir(ctx context.Context, dir string) (domain.IngestSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.IngestSummary{}, fmt.Errorf("context error: %w", err)
	}

	tables, err := datafile.ReadDir(dir)
	if err != nil {
		return domain.IngestSummary{}, fmt.Errorf("read data dir: %w", err)
	}

	return s.apply(ctx, tables, "dir", "dir:"+dir)
}

// LoadZip reads the dataset CSVs from an uploaded zip archive and replaces
// the stored tables with them.
func (s *Service) LoadZip(ctx context.Context, r io.ReaderAt, size int64, name string) (domain.IngestSummary, error) {
	if err := ctx.Err(); err != nil {
		return domain.IngestSummary{}, fmt.Errorf("context error: %w", err)
	}

	tables, err := datafile.ReadZip(r, size)
	if err != nil {
		return domain.IngestSummary{}, fmt.Errorf("read zip: %w", err)
	}

	return s.apply(ctx, tables, "zip", "zip:"+name)
}

func (s *Service) apply(ctx context.Context, tables datafile.Tables, kind, source string) (domain.IngestSummary, error) {
	// Any cached snapshot is stale as soon as replacement starts, on success
	// and on failure alike.
	defer s.snapshots.Invalidate()

	if err := s.clientRepo.ReplaceAll(ctx, tables.Clients); err != nil {
		return domain.IngestSummary{}, fmt.Errorf("replace clients: %w", err)
	}
	if err := s.txnRepo.ReplaceAll(ctx, tables.Transactions); err != nil {
		return domain.IngestSummary{}, fmt.Errorf("replace transactions: %w", err)
	}
	if err := s.actionRepo.ReplaceAll(ctx, tables.Actions); err != nil {
		return domain.IngestSummary{}, fmt.Errorf("replace actions: %w", err)
	}

	if tables.UpliftPredictions != nil {
		if err := s.upliftRepo.ReplaceAll(ctx, tables.UpliftPredictions); err != nil {
			return domain.IngestSummary{}, fmt.Errorf("replace uplift predictions: %w", err)
		}
	}

	summary := domain.IngestSummary{
		IngestID:          uuid.NewString(),
		Source:            source,
		Clients:           len(tables.Clients),
		Transactions:      len(tables.Transactions),
		Actions:           len(tables.Actions),
		UpliftPredictions: len(tables.UpliftPredictions),
	}

	event := domain.IngestEvent{
		IngestID: summary.IngestID,
		Source:   source,
		Context: datatypes.JSONMap{
			"clients":            summary.Clients,
			"transactions":       summary.Transactions,
			"actions":            summary.Actions,
			"uplift_predictions": summary.UpliftPredictions,
		},
	}
	if err := s.eventRepo.SaveEvent(ctx, event); err != nil {
		return domain.IngestSummary{}, fmt.Errorf("save ingest event: %w", err)
	}

	metrics.IngestTotal.WithLabelValues(kind).Inc()
	metrics.IngestRows.WithLabelValues("clients").Add(float64(summary.Clients))
	metrics.IngestRows.WithLabelValues("transactions").Add(float64(summary.Transactions))
	metrics.IngestRows.WithLabelValues("actions").Add(float64(summary.Actions))
	metrics.IngestRows.WithLabelValues("uplift_predictions").Add(float64(summary.UpliftPredictions))

	logger.Info("dataset_ingested",
		"ingest_id", summary.IngestID,
		"source", source,
		"clients", summary.Clients,
		"transactions", summary.Transactions,
		"actions", summary.Actions,
		"uplift_predictions", summary.UpliftPredictions,
	)

	return summary, nil
}
