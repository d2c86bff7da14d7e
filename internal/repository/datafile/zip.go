package datafile

import (
	"archive/zip"
	"fmt"
	"io"
	"path"

	"clientCompass/domain"
)

// ReadZip parses the dataset CSVs out of a zip archive. Files are matched by
// base name so archives with a top-level folder work too. All three required
// CSVs must be present.
func ReadZip(r io.ReaderAt, size int64) (Tables, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Tables{}, fmt.Errorf("open zip: %w", err)
	}

	var tables Tables
	found := map[string]bool{}

	for _, f := range zr.File {
		name := path.Base(f.Name)

		switch name {
		case clientsFile:
			rows, err := parseZipEntry(f, ParseClients)
			if err != nil {
				return Tables{}, err
			}
			tables.Clients = rows
			found[clientsFile] = true

		case transactionsFile:
			rows, err := parseZipEntry(f, ParseTransactions)
			if err != nil {
				return Tables{}, err
			}
			tables.Transactions = rows
			found[transactionsFile] = true

		case actionsFile:
			rows, err := parseZipEntry(f, ParseActions)
			if err != nil {
				return Tables{}, err
			}
			tables.Actions = rows
			found[actionsFile] = true

		case upliftFile:
			rows, err := parseZipEntry(f, ParseUpliftPredictions)
			if err != nil {
				return Tables{}, err
			}
			tables.UpliftPredictions = rows
		}
	}

	for _, required := range []string{clientsFile, transactionsFile, actionsFile} {
		if !found[required] {
			return Tables{}, fmt.Errorf("%w: archive is missing %s", ErrSchemaMismatch, required)
		}
	}

	return tables, nil
}

func parseZipEntry[T domain.Client | domain.Transaction | domain.Action | domain.UpliftPrediction](
	f *zip.File,
	parse func(io.Reader) ([]T, error),
) ([]T, error) {

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer rc.Close()

	rows, err := parse(rc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path.Base(f.Name), err)
	}

	return rows, nil
}
