package recommend

import (
	"context"
	"fmt"
	"sync"

	"clientCompass/domain"
	"clientCompass/pkg/logger"
)

// ---- Repository interfaces ----

type ClientRepository interface {
	FindAll(ctx context.Context) ([]domain.Client, error)
}

type TransactionRepository interface {
	DistinctClientIDs(ctx context.Context) ([]string, error)
}

// SnapshotProvider hands out the current eligibility snapshot.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// Store caches the eligibility snapshot built from the loaded tables. The
// snapshot is read-only once built; ingest invalidates it so the next request
// rebuilds from the new data.
type Store struct {
	clientRepo ClientRepository
	txnRepo    TransactionRepository

	mu   sync.RWMutex
	snap *Snapshot
}

func NewStore(clientRepo ClientRepository, txnRepo TransactionRepository) *Store {
	return &Store{
		clientRepo: clientRepo,
		txnRepo:    txnRepo,
	}
}

func (st *Store) Snapshot(ctx context.Context) (*Snapshot, error) {
	st.mu.RLock()
	snap := st.snap
	st.mu.RUnlock()

	if snap != nil {
		return snap, nil
	}

	return st.rebuild(ctx)
}

// Invalidate drops the cached snapshot. Called after every dataset load.
func (st *Store) Invalidate() {
	st.mu.Lock()
	st.snap = nil
	st.mu.Unlock()
}

func (st *Store) rebuild(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	clients, err := st.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load clients: %w", err)
	}

	ids, err := st.txnRepo.DistinctClientIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transacted client ids: %w", err)
	}

	transacted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		transacted[id] = struct{}{}
	}

	snap := BuildSnapshot(clients, transacted)

	st.mu.Lock()
	st.snap = snap
	st.mu.Unlock()

	logger.Debug("recommend_snapshot_rebuilt",
		"version", snap.Version,
		"clients", len(clients),
		"eligible", len(snap.eligible),
		"transacted", len(transacted),
	)

	return snap, nil
}
