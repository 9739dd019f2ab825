package classify

import (
	"errors"
	"fmt"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/raw"
)

// Result is the outcome of classifying one batch. Lists follow batch order.
type Result struct {
	// Transactions is filled for the UTXO family, one per UTXO record.
	Transactions []model.Transaction
	// Funded and Sent are filled for the account family.
	Funded []model.Operation
	Sent   []model.Operation
	// Classified counts records handed to a classifier without error.
	Classified int
	// Skipped counts records that belong to no classifier of the profile family.
	Skipped int
	// Errs holds one error per record that could not be classified.
	Errs []error
}

// Err joins the per-record errors, nil when every record was classified or skipped.
func (r Result) Err() error {
	return errors.Join(r.Errs...)
}

// Operations counts the operations of the result.
func (r Result) Operations() int {
	n := len(r.Funded) + len(r.Sent)
	for _, tx := range r.Transactions {
		n += len(tx.Ins) + len(tx.Outs)
	}
	return n
}

// Batch dispatches every record to the classifier of its variant.
//
// Records of the other lineage, malformed ones included, and unrecognized records
// are skipped. A record that
// fails is left out of the result and reported in Result.Errs; the rest of the batch
// is still classified.
func Batch(records []raw.Record, watched string, profile model.ChainProfile) Result {
	res := Result{}
	if profile.Family == model.FamilyUTXO {
		res.Transactions = make([]model.Transaction, 0, len(records))
	}

	for _, rec := range records {
		switch r := rec.(type) {
		case raw.Malformed:
			if family, ok := shapeFamily(r.Shape); ok && family != profile.Family {
				res.Skipped++
				continue
			}
			res.Errs = append(res.Errs, r.Err)
		case raw.UTXORecord:
			if profile.Family != model.FamilyUTXO {
				res.Skipped++
				continue
			}
			tx, err := UTXO(r, watched, profile)
			if err != nil {
				res.Errs = append(res.Errs, fmt.Errorf("record %d (%s): %w", r.Index, r.TxID, err))
				continue
			}
			res.Transactions = append(res.Transactions, tx)
			res.Classified++
		case raw.BaseRecord, raw.TokenRecord, raw.InternalRecord:
			if profile.Family != model.FamilyAccount {
				res.Skipped++
				continue
			}
			res.addAccount(account(r, watched, profile))
		default:
			res.Skipped++
		}
	}
	return res
}

// shapeFamily reports the family whose classifiers handle records of shape.
func shapeFamily(shape raw.Kind) (model.Family, bool) {
	switch shape {
	case raw.KindUTXO:
		return model.FamilyUTXO, true
	case raw.KindBase, raw.KindToken, raw.KindInternal:
		return model.FamilyAccount, true
	default:
		return "", false
	}
}

func account(rec raw.Record, watched string, profile model.ChainProfile) []model.Operation {
	switch r := rec.(type) {
	case raw.BaseRecord:
		return Base(r, watched, profile)
	case raw.TokenRecord:
		return Token(r, watched, profile)
	case raw.InternalRecord:
		return Internal(r, watched, profile)
	default:
		return nil
	}
}

func (r *Result) addAccount(ops []model.Operation) {
	r.Classified++
	for _, op := range ops {
		if op.Kind().Funded() {
			r.Funded = append(r.Funded, op)
		} else {
			r.Sent = append(r.Sent, op)
		}
	}
}
