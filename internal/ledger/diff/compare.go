package diff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/aggregate"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

// amountScale covers the finest chain precision.
const amountScale = 18

// ErrMismatch reports a ledger that differs from its export.
var ErrMismatch = errors.New("ledger does not match the export")

// Report is the outcome of Compare.
type Report struct {
	Matched int
	// Missing lists export entries with no ledger counterpart, in export order.
	Missing []Entry
	// Unexpected lists ledger entries with no export counterpart, in ledger order.
	Unexpected []Entry
}

func (r Report) OK() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0
}

// Err is nil when the ledger matched the export and wraps ErrMismatch otherwise.
func (r Report) Err() error {
	if r.OK() {
		return nil
	}
	return fmt.Errorf("%w: %d missing, %d unexpected", ErrMismatch, len(r.Missing), len(r.Unexpected))
}

type matchKey struct {
	txid   string
	kind   model.OperationKind
	amount string
}

func keyOf(e Entry) matchKey {
	return matchKey{
		txid:   strings.ToLower(e.TxID),
		kind:   e.Kind,
		amount: e.Amount.StringFixed(amountScale),
	}
}

// Compare pairs export entries with ledger operations one to one by transaction id,
// kind and amount. Transaction ids compare case-insensitively; addresses and dates
// are informational.
func Compare(export []Entry, ops []model.Operation) Report {
	actual := make([]Entry, len(ops))
	pending := make(map[matchKey][]int, len(ops))
	for i, op := range ops {
		actual[i] = FromOperation(op)
		k := keyOf(actual[i])
		pending[k] = append(pending[k], i)
	}

	var r Report
	for _, e := range export {
		k := keyOf(e)
		if idx := pending[k]; len(idx) > 0 {
			pending[k] = idx[1:]
			r.Matched++
			continue
		}
		r.Missing = append(r.Missing, e)
	}

	left := make([]bool, len(actual))
	for _, idx := range pending {
		for _, i := range idx {
			left[i] = true
		}
	}
	for i, e := range actual {
		if left[i] {
			r.Unexpected = append(r.Unexpected, e)
		}
	}
	return r
}

func FromOperation(op model.Operation) Entry {
	return Entry{
		TxID:    op.TxID(),
		Kind:    op.Kind(),
		Amount:  op.Amount(),
		Address: op.Address(),
		Date:    op.Timestamp(),
	}
}

// Operations flattens a ledger: inputs then outputs of every transaction, followed
// by the funded and sent lists.
func Operations(s aggregate.Snapshot) []model.Operation {
	var ops []model.Operation
	for _, tx := range s.Transactions {
		ops = append(ops, tx.Ins...)
		ops = append(ops, tx.Outs...)
	}
	ops = append(ops, s.Funded...)
	ops = append(ops, s.Sent...)
	return ops
}
