package raw

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/shopspring/decimal"
)

// Tag decodes a serialized batch (a JSON array) into tagged records, one per item, in batch order.
// Items that fail to decode or validate become Malformed records carrying a
// *model.MalformedRecordError; only a batch that is not an array fails as a whole.
func Tag(batch json.RawMessage) ([]Record, error) {
	list, err := items(batch)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(list))
	for idx, item := range list {
		records = append(records, tagItem(idx, item))
	}
	return records, nil
}

func tagItem(idx int, item json.RawMessage) Record {
	shape, err := sniff(item)
	if err != nil {
		return Malformed{Index: idx, Err: &model.MalformedRecordError{Index: idx, Err: err}}
	}

	var (
		rec  Record
		txid string
	)
	switch shape {
	case KindUTXO:
		rec, txid, err = decodeUTXO(idx, item)
	case KindBase:
		rec, txid, err = decodeBase(idx, item)
	case KindToken:
		rec, txid, err = decodeToken(idx, item)
	case KindInternal:
		rec, txid, err = decodeInternal(idx, item)
	default:
		return Unknown{Index: idx}
	}
	if err != nil {
		return Malformed{Index: idx, Shape: shape, Err: &model.MalformedRecordError{Index: idx, TxID: txid, Err: err}}
	}
	return rec
}

// sniff returns the single variant whose discriminator fields are present in item.
func sniff(item json.RawMessage) (Kind, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return KindUnknown, fmt.Errorf("decode object: %w", err)
	}
	var specific map[string]json.RawMessage
	if raw, ok := fields["blockchainSpecific"]; ok && isObject(raw) {
		if err := json.Unmarshal(raw, &specific); err != nil {
			return KindUnknown, fmt.Errorf("decode blockchainSpecific: %w", err)
		}
	}

	has := func(m map[string]json.RawMessage, key string) bool {
		_, ok := m[key]
		return ok
	}
	hasToken := has(fields, "tokensAmount") || has(fields, "tokenSymbol")

	matches := make([]Kind, 0, 1)
	if has(specific, "vin") || has(specific, "vout") {
		matches = append(matches, KindUTXO)
	}
	if (has(fields, "senders") || has(fields, "recipients")) && has(specific, "transactionStatus") {
		matches = append(matches, KindBase)
	}
	if hasToken && isString(fields["senderAddress"]) && isString(fields["recipientAddress"]) {
		matches = append(matches, KindToken)
	}
	if !hasToken && has(fields, "parentHash") && isString(fields["sender"]) && isString(fields["recipient"]) {
		matches = append(matches, KindInternal)
	}

	if len(matches) != 1 {
		return KindUnknown, nil
	}
	return matches[0], nil
}

func decodeUTXO(idx int, item json.RawMessage) (Record, string, error) {
	var w utxoWire
	if err := json.Unmarshal(item, &w); err != nil {
		return nil, "", err
	}
	if err := validate(w); err != nil {
		return nil, w.TransactionID, err
	}
	if _, err := chainhash.NewHashFromStr(w.TransactionID); err != nil {
		return nil, w.TransactionID, fmt.Errorf("transaction id: %w", err)
	}

	rec := UTXORecord{
		Index:       idx,
		TxID:        w.TransactionID,
		BlockHeight: *w.MinedInBlockHeight,
		Timestamp:   *w.Timestamp,
		Inputs:      make([]Entry, 0, len(w.BlockchainSpecific.Vin)),
		Outputs:     make([]Entry, 0, len(w.BlockchainSpecific.Vout)),
	}
	for i, vin := range w.BlockchainSpecific.Vin {
		value, err := decimal.NewFromString(vin.Value)
		if err != nil {
			return nil, w.TransactionID, fmt.Errorf("input %d value: %w", i, err)
		}
		rec.Inputs = append(rec.Inputs, Entry{Addresses: vin.Addresses, Value: value})
	}
	for i, vout := range w.BlockchainSpecific.Vout {
		value, err := decimal.NewFromString(vout.Value)
		if err != nil {
			return nil, w.TransactionID, fmt.Errorf("output %d value: %w", i, err)
		}
		rec.Outputs = append(rec.Outputs, Entry{Addresses: vout.ScriptPubKey.Addresses, Script: vout.ScriptPubKey.Hex, Value: value})
	}
	return rec, w.TransactionID, nil
}

func decodeBase(idx int, item json.RawMessage) (Record, string, error) {
	var w baseWire
	if err := json.Unmarshal(item, &w); err != nil {
		return nil, "", err
	}
	if err := validate(w); err != nil {
		return nil, w.TransactionID, err
	}

	senders, err := accountEntries(w.Senders)
	if err != nil {
		return nil, w.TransactionID, fmt.Errorf("senders: %w", err)
	}
	recipients, err := accountEntries(w.Recipients)
	if err != nil {
		return nil, w.TransactionID, fmt.Errorf("recipients: %w", err)
	}
	return BaseRecord{
		Index:       idx,
		TxID:        w.TransactionID,
		BlockHeight: *w.MinedInBlockHeight,
		Timestamp:   *w.Timestamp,
		Senders:     senders,
		Recipients:  recipients,
		Status:      w.BlockchainSpecific.TransactionStatus,
	}, w.TransactionID, nil
}

func decodeToken(idx int, item json.RawMessage) (Record, string, error) {
	var w tokenWire
	if err := json.Unmarshal(item, &w); err != nil {
		return nil, "", err
	}
	if err := validate(w); err != nil {
		return nil, w.TransactionHash, err
	}
	return TokenRecord{
		Index:        idx,
		TxHash:       w.TransactionHash,
		BlockHeight:  *w.MinedInBlockHeight,
		Sender:       w.SenderAddress,
		Recipient:    w.RecipientAddress,
		TokenName:    w.TokenName,
		TokenSymbol:  w.TokenSymbol,
		TokensAmount: w.TokensAmount,
		Timestamp:    *w.TransactionTimestamp,
	}, w.TransactionHash, nil
}

func decodeInternal(idx int, item json.RawMessage) (Record, string, error) {
	var w internalWire
	if err := json.Unmarshal(item, &w); err != nil {
		return nil, "", err
	}
	if err := validate(w); err != nil {
		return nil, w.ParentHash, err
	}
	return InternalRecord{
		Index:       idx,
		ParentHash:  w.ParentHash,
		BlockHeight: *w.MinedInBlockHeight,
		Sender:      w.Sender,
		Recipient:   w.Recipient,
		Timestamp:   *w.Timestamp,
	}, w.ParentHash, nil
}

func accountEntries(in []accountEntryWire) ([]AccountEntry, error) {
	out := make([]AccountEntry, 0, len(in))
	for i, e := range in {
		amount, err := decimal.NewFromString(e.Amount)
		if err != nil {
			return nil, fmt.Errorf("entry %d amount: %w", i, err)
		}
		out = append(out, AccountEntry{Address: e.Address, Amount: amount})
	}
	return out, nil
}

func isString(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '"'
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}
