package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: glogger.Default.LogMode(glogger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func TestUpliftRepository_GetByAction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUpliftRepository(db)

	rows := sqlmock.NewRows([]string{"id", "action_id", "client_id", "uplift_pred"}).
		AddRow(1, "a1", "c1", 0.9).
		AddRow(2, "a1", "c2", 0.4)

	mock.ExpectQuery(`SELECT .* FROM "uplift_predictions" WHERE action_id = .* AND uplift_pred > 0 ORDER BY uplift_pred DESC LIMIT .*`).
		WithArgs("a1", 5).
		WillReturnRows(rows)

	preds, err := repo.GetByAction(context.Background(), "a1", 5)
	require.NoError(t, err)
	require.Len(t, preds, 2)

	assert.Equal(t, "c1", preds[0].ClientID)
	assert.InDelta(t, 0.9, preds[0].UpliftPred, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpliftRepository_GetByAction_DefaultLimit(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUpliftRepository(db)

	mock.ExpectQuery(`SELECT .* FROM "uplift_predictions"`).
		WithArgs("a1", 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "action_id", "client_id", "uplift_pred"}))

	preds, err := repo.GetByAction(context.Background(), "a1", 0)
	require.NoError(t, err)
	assert.Empty(t, preds)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_DistinctClientIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTransactionRepository(db)

	rows := sqlmock.NewRows([]string{"client_id"}).
		AddRow("c1").
		AddRow("c2")

	mock.ExpectQuery(`SELECT DISTINCT .*client_id.* FROM "transactions"`).
		WillReturnRows(rows)

	ids, err := repo.DistinctClientIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, ids)
	require.NoError(t, mock.ExpectationsWereMet())
}
