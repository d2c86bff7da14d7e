package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"clientCompass/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	clients []domain.Client
	txns    []domain.Transaction
	actions []domain.Action
	preds   []domain.UpliftPrediction

	events       []domain.IngestEvent
	invalidated  int
	upliftCalled bool
}

type fakeClientRepo struct{ store *fakeStore }

func (r *fakeClientRepo) ReplaceAll(ctx context.Context, clients []domain.Client) error {
	r.store.clients = clients
	return nil
}

type fakeTxnRepo struct{ store *fakeStore }

func (r *fakeTxnRepo) ReplaceAll(ctx context.Context, txns []domain.Transaction) error {
	r.store.txns = txns
	return nil
}

type fakeActionRepo struct{ store *fakeStore }

func (r *fakeActionRepo) ReplaceAll(ctx context.Context, actions []domain.Action) error {
	r.store.actions = actions
	return nil
}

type fakeUpliftRepo struct{ store *fakeStore }

func (r *fakeUpliftRepo) ReplaceAll(ctx context.Context, preds []domain.UpliftPrediction) error {
	r.store.upliftCalled = true
	r.store.preds = preds
	return nil
}

type fakeEventRepo struct{ store *fakeStore }

func (r *fakeEventRepo) SaveEvent(ctx context.Context, event domain.IngestEvent) error {
	r.store.events = append(r.store.events, event)
	return nil
}

type fakeInvalidator struct{ store *fakeStore }

func (f *fakeInvalidator) Invalidate() { f.store.invalidated++ }

func newTestIngest(store *fakeStore) *Service {
	return NewService(
		&fakeClientRepo{store: store},
		&fakeTxnRepo{store: store},
		&fakeActionRepo{store: store},
		&fakeUpliftRepo{store: store},
		&fakeEventRepo{store: store},
		&fakeInvalidator{store: store},
	)
}

const clientsCSV = `client_id,client_country,client_nationality,client_city,client_gender,client_segment,client_premium_status,client_is_phone_contactable,client_is_email_contactable,client_is_instant_messaging_contactable,client_is_contactable
c1,France,French,Paris,F,retail,gold,true,true,false,true
`

const transactionsCSV = `transaction_id,client_id,transaction_date,gross_amount_euro
t1,c1,2024-01-10,120.50
t2,c1,2024-02-05,80
`

const actionsCSV = `action_id,client_id,action_label,action_start_date,action_end_date,client_is_present
a1,c1,gala,2024-03-01,2024-03-03,true
`

func writeDataset(t *testing.T, dir string) {
	t.Helper()

	files := map[string]string{
		"clients.csv":      clientsCSV,
		"transactions.csv": transactionsCSV,
		"actions.csv":      actionsCSV,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir)

	store := &fakeStore{}
	svc := newTestIngest(store)

	summary, err := svc.LoadDir(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 1, summary.Clients)
	assert.Equal(t, 2, summary.Transactions)
	assert.Equal(t, 1, summary.Actions)
	assert.Equal(t, 0, summary.UpliftPredictions)
	assert.NotEmpty(t, summary.IngestID)
	assert.Equal(t, "dir:"+dir, summary.Source)

	assert.Len(t, store.clients, 1)
	assert.Len(t, store.txns, 2)
	assert.Len(t, store.actions, 1)

	// optional predictions file was absent
	assert.False(t, store.upliftCalled)

	require.Len(t, store.events, 1)
	assert.Equal(t, summary.IngestID, store.events[0].IngestID)

	assert.Equal(t, 1, store.invalidated)
}

func TestLoadDir_MissingFiles(t *testing.T) {
	store := &fakeStore{}
	svc := newTestIngest(store)

	_, err := svc.LoadDir(context.Background(), t.TempDir())
	require.Error(t, err)

	// a failed read never touches the stored tables or the snapshot
	assert.Equal(t, 0, store.invalidated)
	assert.Empty(t, store.events)
}

func TestLoadDir_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestIngest(&fakeStore{})

	_, err := svc.LoadDir(ctx, t.TempDir())
	require.Error(t, err)
}
