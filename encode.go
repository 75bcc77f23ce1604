package finboard

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// amountRow is a specialized struct to read an amount in two fields.
type amountRow struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (a amountRow) Money() Money {
	return M(a.Amount, a.Currency)
}

// recordRow is the wire shape of a Record.
type recordRow struct {
	ID          string `json:"id"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	amountRow
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Method string `json:"method,omitempty"`
}

// MarshalJSON implements the json.Marshaler interface for Record with
// a stable field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("date", r.Date)
	w.Append("description", r.Description)
	w.Append("category", r.Category)
	w.EmbedFrom(r.Amount)
	w.Append("kind", r.Kind)
	w.Append("status", r.Status)
	w.Optional("method", string(r.Method))
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Record.
// It handles the flattened amount and currency fields.
func (r *Record) UnmarshalJSON(data []byte) error {
	var row recordRow
	if err := json.Unmarshal(data, &row); err != nil {
		return err
	}
	r.ID = row.ID
	r.Date = row.Date
	r.Description = row.Description
	r.Category = Category(row.Category)
	r.Amount = row.Money()
	r.Kind = Kind(row.Kind)
	r.Status = Status(row.Status)
	r.Method = PaymentMethod(row.Method)
	return nil
}

// EncodeRecord writes a single record as one JSONL line.
func EncodeRecord(w io.Writer, r Record) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("could not marshal record %q: %w", r.ID, err)
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		return err
	}
	return nil
}

// EncodeRecords writes records as JSONL, one record per line, in the
// order given.
func EncodeRecords(w io.Writer, records []Record) error {
	for _, r := range records {
		if err := EncodeRecord(w, r); err != nil {
			return err
		}
	}
	return nil
}

// DecodeRecords decodes records from a stream of JSONL data. Empty
// lines are skipped. Lines that fail validation abort the decode.
func DecodeRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var rec Record
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("could not decode record line %q: %w", string(lineBytes), err)
		}
		rec, err := rec.Validate()
		if err != nil {
			return nil, fmt.Errorf("invalid record line %q: %w", string(lineBytes), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
