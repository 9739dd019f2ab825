package classify

import (
	"strings"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/raw"
	"github.com/shopspring/decimal"
)

// Base classifies a native-asset account transaction. It returns at most one
// operation per role of watched: a Received operation for the recipient role and
// a Sent, Sent to self or Failed to send operation for the sender role.
//
// Both roles carry the sum of all recipient amounts, the way the provider reports
// multi-recipient transfers. A failed transaction never funds its recipients.
func Base(rec raw.BaseRecord, watched string, profile model.ChainProfile) []model.Operation {
	isRecipient := containsAddress(rec.Recipients, watched)
	isSender := containsAddress(rec.Senders, watched)
	isFailed := rec.Status != profile.SuccessStatus

	if !isRecipient && !isSender {
		return nil
	}

	amount := decimal.Zero
	for _, r := range rec.Recipients {
		amount = amount.Add(r.Amount)
	}

	ops := make([]model.Operation, 0, 2)
	if isRecipient && !isFailed {
		ops = append(ops, accountOperation(rec.Timestamp, amount, watched, rec.TxID, rec.BlockHeight, model.Received, nil, profile))
	}
	if isSender {
		kind := model.Sent
		switch {
		case isFailed:
			kind = model.FailedToSend
		case isRecipient:
			kind = model.SentToSelf
		}
		ops = append(ops, accountOperation(rec.Timestamp, amount, watched, rec.TxID, rec.BlockHeight, kind, nil, profile))
	}
	return ops
}

// Token classifies a token transfer. The primary amount is always zero: token
// quantities are in token units and travel in the token descriptor instead.
func Token(rec raw.TokenRecord, watched string, profile model.ChainProfile) []model.Operation {
	token := &model.Token{
		Symbol: rec.TokenSymbol,
		Name:   rec.TokenName,
		Amount: rec.TokensAmount,
	}

	var ops []model.Operation
	if sameAddress(rec.Recipient, watched) {
		ops = append(ops, accountOperation(rec.Timestamp, decimal.Zero, watched, rec.TxHash, rec.BlockHeight, model.ReceivedToken, token, profile))
	}
	if sameAddress(rec.Sender, watched) {
		ops = append(ops, accountOperation(rec.Timestamp, decimal.Zero, watched, rec.TxHash, rec.BlockHeight, model.SentToken, token, profile))
	}
	return ops
}

// Internal classifies a contract-internal transfer, identified by its parent transaction.
// The provider does not reliably report the moved value, so the amount is zero.
func Internal(rec raw.InternalRecord, watched string, profile model.ChainProfile) []model.Operation {
	var ops []model.Operation
	if sameAddress(rec.Recipient, watched) {
		ops = append(ops, accountOperation(rec.Timestamp, decimal.Zero, watched, rec.ParentHash, rec.BlockHeight, model.InternalReceived, nil, profile))
	}
	if sameAddress(rec.Sender, watched) {
		ops = append(ops, accountOperation(rec.Timestamp, decimal.Zero, watched, rec.ParentHash, rec.BlockHeight, model.InternalSent, nil, profile))
	}
	return ops
}

func accountOperation(
	timestamp int64,
	amount decimal.Decimal,
	address string,
	txid string,
	blockHeight uint64,
	kind model.OperationKind,
	token *model.Token,
	profile model.ChainProfile,
) model.Operation {
	return model.NewOperation(model.OperationParams{
		Timestamp:   model.FormatTimestamp(timestamp),
		Amount:      amount,
		Precision:   profile.Precision,
		Address:     address,
		TxID:        txid,
		Kind:        kind,
		BlockHeight: &blockHeight,
		Token:       token,
	})
}

func containsAddress(entries []raw.AccountEntry, watched string) bool {
	for _, e := range entries {
		if sameAddress(e.Address, watched) {
			return true
		}
	}
	return false
}

func sameAddress(a, b string) bool {
	return b != "" && strings.EqualFold(a, b)
}
