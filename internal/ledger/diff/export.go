// Package diff compares a scanned ledger with an operations export of another product.
package diff

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	gvalidator "github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

// ErrInvalidExport reports an export that cannot be read as a list of operations.
var ErrInvalidExport = errors.New("invalid operations export")

var validator = newValidator()

func newValidator() *gvalidator.Validate {
	v := gvalidator.New(gvalidator.WithRequiredStructEnabled())
	err := v.RegisterValidation("operation_kind", func(fl gvalidator.FieldLevel) bool {
		return model.OperationKind(fl.Field().String()).Known()
	})
	if err != nil {
		panic("register operation_kind validation: " + err.Error())
	}
	return v
}

// Entry is one operation of an export or of a ledger.
type Entry struct {
	TxID    string
	Kind    model.OperationKind
	Amount  decimal.Decimal
	Address string
	Date    string
}

type entryJSON struct {
	TxID    string `json:"txid" validate:"required"`
	Kind    string `json:"kind" validate:"required,operation_kind"`
	Amount  string `json:"amount" validate:"required,numeric"`
	Address string `json:"address"`
	Date    string `json:"date"`
}

// Import reads an export: a JSON array of operations with txid, kind and amount,
// optionally address and date.
func Import(r io.Reader) ([]Entry, error) {
	var items []entryJSON
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidExport, err)
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		if err := validator.Struct(item); err != nil {
			return nil, fmt.Errorf("%w: operation %d: %v", ErrInvalidExport, i, err)
		}
		amount, err := decimal.NewFromString(item.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: operation %d amount: %v", ErrInvalidExport, i, err)
		}
		entries = append(entries, Entry{
			TxID:    item.TxID,
			Kind:    model.OperationKind(item.Kind),
			Amount:  amount,
			Address: item.Address,
			Date:    item.Date,
		})
	}
	return entries, nil
}

// ImportFile reads the export stored at path.
func ImportFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open operations export: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()
	return Import(f)
}
