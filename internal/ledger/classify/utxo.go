// Package classify turns tagged raw records into ledger operations for a watched address.
//
// Every function here is pure: no I/O, no logging. Failures are returned to the caller.
package classify

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/raw"
	"github.com/shopspring/decimal"
)

// UTXO classifies a Bitcoin-family transaction against watched, which must already be canonical.
//
// A provider address matches when its canonical form contains watched; the provider
// may return prefixed or joined address strings. When any input matches, every
// input address gets a Received operation carrying the summed value of the outputs
// paying watched. When any output matches, every output address gets a Sent
// operation carrying that output's value. A transaction that does not touch watched
// is still returned, with empty operation lists.
func UTXO(rec raw.UTXORecord, watched string, profile model.ChainProfile) (model.Transaction, error) {
	inputs, outbound, err := canonicalEntries(rec.Inputs, watched, profile)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("inputs: %w", err)
	}
	outputs, inbound, err := canonicalEntries(rec.Outputs, watched, profile)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("outputs: %w", err)
	}

	amount := decimal.Zero
	for i, matched := range inbound {
		if matched {
			amount = amount.Add(rec.Outputs[i].Value)
		}
	}

	tx := model.Transaction{
		BlockHeight: rec.BlockHeight,
		Timestamp:   model.FormatTimestamp(rec.Timestamp),
		TxID:        rec.TxID,
		Ins:         []model.Operation{},
		Outs:        []model.Operation{},
	}

	if anyMatched(outbound) {
		for _, addresses := range inputs {
			for _, address := range addresses {
				tx.Ins = append(tx.Ins, utxoOperation(rec, tx.Timestamp, amount, address, model.Received, profile))
			}
		}
	}
	if anyMatched(inbound) {
		for i, addresses := range outputs {
			for _, address := range addresses {
				tx.Outs = append(tx.Outs, utxoOperation(rec, tx.Timestamp, rec.Outputs[i].Value, address, model.Sent, profile))
			}
		}
	}
	return tx, nil
}

// canonicalEntries canonicalizes the addresses of every entry and reports per entry
// whether one of them contains watched.
func canonicalEntries(entries []raw.Entry, watched string, profile model.ChainProfile) ([][]string, []bool, error) {
	addresses := make([][]string, len(entries))
	matched := make([]bool, len(entries))
	for i, entry := range entries {
		reported := entry.Addresses
		if len(reported) == 0 && entry.Script != "" && profile.Scripts != nil {
			decoded, err := profile.Scripts.Addresses(entry.Script)
			if err != nil {
				return nil, nil, err
			}
			reported = decoded
		}
		addresses[i] = make([]string, 0, len(reported))
		for _, address := range reported {
			canonical, err := profile.Canonical(address)
			if err != nil {
				return nil, nil, err
			}
			addresses[i] = append(addresses[i], canonical)
			if watched != "" && strings.Contains(canonical, watched) {
				matched[i] = true
			}
		}
	}
	return addresses, matched, nil
}

func utxoOperation(rec raw.UTXORecord, timestamp string, amount decimal.Decimal, address string, kind model.OperationKind, profile model.ChainProfile) model.Operation {
	return model.NewOperation(model.OperationParams{
		Timestamp: timestamp,
		Amount:    amount,
		Precision: profile.Precision,
		Address:   address,
		TxID:      rec.TxID,
		Kind:      kind,
	})
}

func anyMatched(flags []bool) bool {
	for _, f := range flags {
		if f {
			return true
		}
	}
	return false
}
