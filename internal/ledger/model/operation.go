package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OperationKind is the direction of an operation relative to the watched address.
type OperationKind string

var (
	Received         OperationKind = "Received"
	Sent             OperationKind = "Sent"
	SentToSelf       OperationKind = "Sent to self"
	FailedToSend     OperationKind = "Failed to send"
	ReceivedToken    OperationKind = "Received (token)"
	SentToken        OperationKind = "Sent (token)"
	InternalReceived OperationKind = "SCI (recipient)"
	InternalSent     OperationKind = "SCI (caller)"
)

// Funded reports whether operations of this kind land on the funded side of a ledger.
func (k OperationKind) Funded() bool {
	switch k {
	case Received, ReceivedToken, InternalReceived:
		return true
	default:
		return false
	}
}

// Known reports whether k is one of the kinds produced by the classifiers.
func (k OperationKind) Known() bool {
	switch k {
	case Received, Sent, SentToSelf, FailedToSend, ReceivedToken, SentToken, InternalReceived, InternalSent:
		return true
	default:
		return false
	}
}

// Token describes the asset moved by a token transfer.
type Token struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// OperationParams holds the attributes of a new Operation.
type OperationParams struct {
	Timestamp   string
	Amount      decimal.Decimal
	Precision   int32
	Address     string
	TxID        string
	Kind        OperationKind
	BlockHeight *uint64
	Token       *Token
}

// Operation is one directional ledger entry of a watched address.
// It is immutable: values are only readable through accessors.
type Operation struct {
	timestamp   string
	amount      decimal.Decimal
	precision   int32
	address     string
	txid        string
	kind        OperationKind
	blockHeight uint64
	hasBlock    bool
	token       *Token
}

// NewOperation builds an Operation from params.
func NewOperation(p OperationParams) Operation {
	op := Operation{
		timestamp: p.Timestamp,
		amount:    p.Amount,
		precision: p.Precision,
		address:   p.Address,
		txid:      p.TxID,
		kind:      p.Kind,
	}
	if p.BlockHeight != nil {
		op.blockHeight = *p.BlockHeight
		op.hasBlock = true
	}
	if p.Token != nil {
		t := *p.Token
		op.token = &t
	}
	return op
}

// Timestamp returns the display timestamp.
func (o Operation) Timestamp() string { return o.timestamp }

// Amount returns the exact amount.
func (o Operation) Amount() decimal.Decimal { return o.amount }

// AmountString renders the amount at the precision of the chain it was built for.
func (o Operation) AmountString() string { return o.amount.StringFixed(o.precision) }

func (o Operation) Address() string { return o.address }

func (o Operation) TxID() string { return o.txid }

func (o Operation) Kind() OperationKind { return o.kind }

// BlockHeight returns the mined block height when the provider reported one.
func (o Operation) BlockHeight() (uint64, bool) { return o.blockHeight, o.hasBlock }

// Token returns the token descriptor of a token transfer.
func (o Operation) Token() (Token, bool) {
	if o.token == nil {
		return Token{}, false
	}
	return *o.token, true
}

type operationJSON struct {
	Timestamp   string        `json:"timestamp"`
	Amount      string        `json:"amount"`
	Address     string        `json:"address"`
	TxID        string        `json:"txid"`
	Kind        OperationKind `json:"kind"`
	BlockHeight *uint64       `json:"blockHeight,omitempty"`
	Token       *Token        `json:"token,omitempty"`
}

// MarshalJSON renders the operation with its amount at fixed precision.
func (o Operation) MarshalJSON() ([]byte, error) {
	out := operationJSON{
		Timestamp: o.timestamp,
		Amount:    o.AmountString(),
		Address:   o.address,
		TxID:      o.txid,
		Kind:      o.kind,
		Token:     o.token,
	}
	if o.hasBlock {
		h := o.blockHeight
		out.BlockHeight = &h
	}
	return json.Marshal(out)
}
