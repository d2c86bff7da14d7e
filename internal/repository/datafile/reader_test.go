package datafile

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const clientsCSV = `client_id,client_country,client_nationality,client_city,client_gender,client_segment,client_premium_status,client_is_phone_contactable,client_is_email_contactable,client_is_instant_messaging_contactable,client_is_contactable
c1,France,French,Paris,F,retail,gold,true,true,false,true
c2,Germany,German,Berlin,M,retail,standard,false,false,false,false
`

const transactionsCSV = `transaction_id,client_id,transaction_date,gross_amount_euro,product_category
t1,c1,2024-01-10,120.50,leather
t2,c1,2024-02-05 14:30:00,80,watches
t3,c2,,200,
`

const actionsCSV = `action_id,client_id,action_label,action_channel,action_start_date,action_end_date,client_is_present,client_is_invited
a1,c1,gala,email,2024-03-01,2024-03-03,true,true
a2,c2,tasting,phone,2024-04-10,2024-04-10,false,
`

const upliftCSV = `action_id,client_id,uplift_pred
a1,c1,0.42
a1,c2,-0.10
`

func TestParseClients(t *testing.T) {
	clients, err := ParseClients(strings.NewReader(clientsCSV))
	require.NoError(t, err)
	require.Len(t, clients, 2)

	assert.Equal(t, "c1", clients[0].ClientID)
	assert.Equal(t, "France", clients[0].Country)
	assert.True(t, clients[0].Contactable)
	assert.True(t, clients[0].PhoneContactable)
	assert.False(t, clients[0].InstantMessagingContactable)
	assert.False(t, clients[1].Contactable)
}

func TestParseClients_MissingColumn(t *testing.T) {
	csv := "client_id,client_country\nc1,France\n"

	_, err := ParseClients(strings.NewReader(csv))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseClients_EmptyFile(t *testing.T) {
	_, err := ParseClients(strings.NewReader(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestParseTransactions(t *testing.T) {
	txns, err := ParseTransactions(strings.NewReader(transactionsCSV))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, "t1", txns[0].TransactionID)
	assert.InDelta(t, 120.50, txns[0].GrossAmountEuro, 1e-9)
	assert.Equal(t, "2024-01-10", txns[0].TransactionDate.Format("2006-01-02"))

	// datetime layout
	assert.Equal(t, 14, txns[1].TransactionDate.Hour())

	// empty date parses to zero time
	assert.True(t, txns[2].TransactionDate.IsZero())
}

func TestParseTransactions_BadAmount(t *testing.T) {
	csv := "transaction_id,client_id,transaction_date,gross_amount_euro\nt1,c1,2024-01-01,abc\n"

	_, err := ParseTransactions(strings.NewReader(csv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gross_amount_euro")
}

func TestParseActions(t *testing.T) {
	actions, err := ParseActions(strings.NewReader(actionsCSV))
	require.NoError(t, err)
	require.Len(t, actions, 2)

	assert.Equal(t, "a1", actions[0].ActionID)
	assert.True(t, actions[0].ClientPresent)
	assert.True(t, actions[0].ClientInvited)

	// empty invited flag defaults to false
	assert.False(t, actions[1].ClientInvited)
}

func TestParseUpliftPredictions(t *testing.T) {
	preds, err := ParseUpliftPredictions(strings.NewReader(upliftCSV))
	require.NoError(t, err)
	require.Len(t, preds, 2)

	assert.InDelta(t, 0.42, preds[0].UpliftPred, 1e-9)
	assert.InDelta(t, -0.10, preds[1].UpliftPred, 1e-9)
}

func writeDataset(t *testing.T, dir string, withUplift bool) {
	t.Helper()

	files := map[string]string{
		"clients.csv":      clientsCSV,
		"transactions.csv": transactionsCSV,
		"actions.csv":      actionsCSV,
	}
	if withUplift {
		files["uplift_predictions.csv"] = upliftCSV
	}

	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, true)

	tables, err := ReadDir(dir)
	require.NoError(t, err)

	assert.Len(t, tables.Clients, 2)
	assert.Len(t, tables.Transactions, 3)
	assert.Len(t, tables.Actions, 2)
	assert.Len(t, tables.UpliftPredictions, 2)
}

func TestReadDir_UpliftOptional(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, false)

	tables, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Nil(t, tables.UpliftPredictions)
}

func TestReadDir_MissingRequiredFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "clients.csv"), []byte(clientsCSV), 0o644))

	_, err := ReadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "transactions.csv")
}

func buildZip(t *testing.T, files map[string]string) *bytes.Reader {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return bytes.NewReader(buf.Bytes())
}

func TestReadZip(t *testing.T) {
	r := buildZip(t, map[string]string{
		"clients.csv":      clientsCSV,
		"transactions.csv": transactionsCSV,
		"actions.csv":      actionsCSV,
	})

	tables, err := ReadZip(r, r.Size())
	require.NoError(t, err)

	assert.Len(t, tables.Clients, 2)
	assert.Len(t, tables.Transactions, 3)
	assert.Len(t, tables.Actions, 2)
}

func TestReadZip_NestedFolder(t *testing.T) {
	r := buildZip(t, map[string]string{
		"export/clients.csv":            clientsCSV,
		"export/transactions.csv":       transactionsCSV,
		"export/actions.csv":            actionsCSV,
		"export/uplift_predictions.csv": upliftCSV,
	})

	tables, err := ReadZip(r, r.Size())
	require.NoError(t, err)

	assert.Len(t, tables.Clients, 2)
	assert.Len(t, tables.UpliftPredictions, 2)
}

func TestReadZip_MissingRequiredFile(t *testing.T) {
	r := buildZip(t, map[string]string{
		"clients.csv": clientsCSV,
	})

	_, err := ReadZip(r, r.Size())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}
