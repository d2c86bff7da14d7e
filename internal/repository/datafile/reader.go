package datafile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"clientCompass/domain"
)

// ErrSchemaMismatch flags a CSV whose header is missing a required column.
// The schema is otherwise assumed, not validated.
var ErrSchemaMismatch = errors.New("schema mismatch")

const (
	clientsFile      = "clients.csv"
	transactionsFile = "transactions.csv"
	actionsFile      = "actions.csv"
	upliftFile       = "uplift_predictions.csv"
)

// Tables holds the parsed rows of one dataset load. UpliftPredictions is nil
// when the optional predictions file is absent.
type Tables struct {
	Clients           []domain.Client
	Transactions      []domain.Transaction
	Actions           []domain.Action
	UpliftPredictions []domain.UpliftPrediction
}

// ReadDir parses the three required CSVs (and the optional uplift
// predictions CSV) from a directory.
func ReadDir(dir string) (Tables, error) {
	var tables Tables

	if err := readFile(filepath.Join(dir, clientsFile), func(r io.Reader) error {
		rows, err := ParseClients(r)
		tables.Clients = rows
		return err
	}); err != nil {
		return Tables{}, err
	}

	if err := readFile(filepath.Join(dir, transactionsFile), func(r io.Reader) error {
		rows, err := ParseTransactions(r)
		tables.Transactions = rows
		return err
	}); err != nil {
		return Tables{}, err
	}

	if err := readFile(filepath.Join(dir, actionsFile), func(r io.Reader) error {
		rows, err := ParseActions(r)
		tables.Actions = rows
		return err
	}); err != nil {
		return Tables{}, err
	}

	upliftPath := filepath.Join(dir, upliftFile)
	if _, err := os.Stat(upliftPath); err == nil {
		if err := readFile(upliftPath, func(r io.Reader) error {
			rows, err := ParseUpliftPredictions(r)
			tables.UpliftPredictions = rows
			return err
		}); err != nil {
			return Tables{}, err
		}
	}

	return tables, nil
}

func readFile(path string, parse func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if err := parse(f); err != nil {
		return fmt.Errorf("%s: %w", filepath.Base(path), err)
	}

	return nil
}

// header maps column names to their position and resolves required columns.
type header map[string]int

func newHeader(record []string) header {
	h := make(header, len(record))
	for i, name := range record {
		h[name] = i
	}
	return h
}

func (h header) require(cols ...string) error {
	for _, col := range cols {
		if _, ok := h[col]; !ok {
			return fmt.Errorf("%w: missing column %q", ErrSchemaMismatch, col)
		}
	}
	return nil
}

func (h header) get(record []string, col string) string {
	idx, ok := h[col]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}

func ParseClients(r io.Reader) ([]domain.Client, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty file", ErrSchemaMismatch)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	h := newHeader(head)
	if err := h.require(
		"client_id",
		"client_country",
		"client_nationality",
		"client_city",
		"client_gender",
		"client_segment",
		"client_premium_status",
		"client_is_phone_contactable",
		"client_is_email_contactable",
		"client_is_instant_messaging_contactable",
		"client_is_contactable",
	); err != nil {
		return nil, err
	}

	var out []domain.Client
	line := 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		phone, err := parseBool(h.get(record, "client_is_phone_contactable"))
		if err != nil {
			return nil, fmt.Errorf("row %d client_is_phone_contactable: %w", line, err)
		}
		email, err := parseBool(h.get(record, "client_is_email_contactable"))
		if err != nil {
			return nil, fmt.Errorf("row %d client_is_email_contactable: %w", line, err)
		}
		im, err := parseBool(h.get(record, "client_is_instant_messaging_contactable"))
		if err != nil {
			return nil, fmt.Errorf("row %d client_is_instant_messaging_contactable: %w", line, err)
		}
		contactable, err := parseBool(h.get(record, "client_is_contactable"))
		if err != nil {
			return nil, fmt.Errorf("row %d client_is_contactable: %w", line, err)
		}

		out = append(out, domain.Client{
			ClientID:                    h.get(record, "client_id"),
			Country:                     h.get(record, "client_country"),
			Nationality:                 h.get(record, "client_nationality"),
			City:                        h.get(record, "client_city"),
			Gender:                      h.get(record, "client_gender"),
			Segment:                     h.get(record, "client_segment"),
			PremiumStatus:               h.get(record, "client_premium_status"),
			PhoneContactable:            phone,
			EmailContactable:            email,
			InstantMessagingContactable: im,
			Contactable:                 contactable,
		})
	}

	return out, nil
}

func ParseTransactions(r io.Reader) ([]domain.Transaction, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty file", ErrSchemaMismatch)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	h := newHeader(head)
	if err := h.require(
		"transaction_id",
		"client_id",
		"transaction_date",
		"gross_amount_euro",
	); err != nil {
		return nil, err
	}

	var out []domain.Transaction
	line := 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		date, err := parseDate(h.get(record, "transaction_date"))
		if err != nil {
			return nil, fmt.Errorf("row %d transaction_date: %w", line, err)
		}

		amount, err := parseFloat(h.get(record, "gross_amount_euro"))
		if err != nil {
			return nil, fmt.Errorf("row %d gross_amount_euro: %w", line, err)
		}

		out = append(out, domain.Transaction{
			TransactionID:      h.get(record, "transaction_id"),
			ClientID:           h.get(record, "client_id"),
			TransactionDate:    date,
			GrossAmountEuro:    amount,
			ProductCategory:    h.get(record, "product_category"),
			ProductSubcategory: h.get(record, "product_subcategory"),
			ProductStyle:       h.get(record, "product_style"),
		})
	}

	return out, nil
}

func ParseActions(r io.Reader) ([]domain.Action, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty file", ErrSchemaMismatch)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	h := newHeader(head)
	if err := h.require(
		"action_id",
		"client_id",
		"action_label",
		"action_start_date",
		"action_end_date",
		"client_is_present",
	); err != nil {
		return nil, err
	}

	var out []domain.Action
	line := 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		start, err := parseDate(h.get(record, "action_start_date"))
		if err != nil {
			return nil, fmt.Errorf("row %d action_start_date: %w", line, err)
		}
		end, err := parseDate(h.get(record, "action_end_date"))
		if err != nil {
			return nil, fmt.Errorf("row %d action_end_date: %w", line, err)
		}
		present, err := parseBool(h.get(record, "client_is_present"))
		if err != nil {
			return nil, fmt.Errorf("row %d client_is_present: %w", line, err)
		}

		invited := false
		if v := h.get(record, "client_is_invited"); v != "" {
			invited, err = parseBool(v)
			if err != nil {
				return nil, fmt.Errorf("row %d client_is_invited: %w", line, err)
			}
		}

		out = append(out, domain.Action{
			ActionID:      h.get(record, "action_id"),
			ClientID:      h.get(record, "client_id"),
			ActionLabel:   h.get(record, "action_label"),
			ActionChannel: h.get(record, "action_channel"),
			StartDate:     start,
			EndDate:       end,
			ClientPresent: present,
			ClientInvited: invited,
		})
	}

	return out, nil
}

func ParseUpliftPredictions(r io.Reader) ([]domain.UpliftPrediction, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty file", ErrSchemaMismatch)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	h := newHeader(head)
	if err := h.require("action_id", "client_id", "uplift_pred"); err != nil {
		return nil, err
	}

	var out []domain.UpliftPrediction
	line := 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}
		line++

		pred, err := parseFloat(h.get(record, "uplift_pred"))
		if err != nil {
			return nil, fmt.Errorf("row %d uplift_pred: %w", line, err)
		}

		out = append(out, domain.UpliftPrediction{
			ActionID:   h.get(record, "action_id"),
			ClientID:   h.get(record, "client_id"),
			UpliftPred: pred,
		})
	}

	return out, nil
}

func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}

	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}

	return b, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}

	return f, nil
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
