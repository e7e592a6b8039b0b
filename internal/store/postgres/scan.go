package postgres

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alfredjeanlab/mediaconvert/types"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// scanJob scans a single document column into a types.Job.
func scanJob(row scannable) (types.Job, error) {
	var document []byte
	if err := row.Scan(&document); err != nil {
		return types.Job{}, err
	}
	return decodeJobDocument(document)
}

// decodeJobDocument keeps integers as json.Number so int32 fields survive
// without a float round trip.
func decodeJobDocument(data []byte) (types.Job, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return types.Job{}, fmt.Errorf("scan job document: %w", err)
	}
	return types.DecodeJob(doc)
}

// nullString converts a string to sql.NullString; empty string is null.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
