// Package raw turns provider payloads into tagged records.
//
// Provider listings mix several payload shapes in one batch. Tag inspects which
// fields each item carries, decodes it into the matching variant and validates it,
// so classifiers receive statically typed records instead of sniffing fields.
package raw

import "github.com/shopspring/decimal"

// Kind identifies the variant of a tagged record.
type Kind int

const (
	KindUnknown Kind = iota
	KindUTXO
	KindBase
	KindToken
	KindInternal
	KindMalformed
)

func (k Kind) String() string {
	switch k {
	case KindUTXO:
		return "utxo"
	case KindBase:
		return "base"
	case KindToken:
		return "token"
	case KindInternal:
		return "internal"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Record is one tagged item of a raw batch.
type Record interface {
	// Position is the index of the item in the batch it was tagged from.
	Position() int
	Kind() Kind
}

// Entry is one side of a UTXO transaction: an input or an output.
type Entry struct {
	Addresses []string
	// Script is the hex locking script of an output, when the provider reports one.
	Script string
	Value  decimal.Decimal
}

// UTXORecord is a Bitcoin-family transaction.
type UTXORecord struct {
	Index       int
	TxID        string
	BlockHeight uint64
	Timestamp   int64
	Inputs      []Entry
	Outputs     []Entry
}

// AccountEntry is a sender or recipient of an account transaction.
type AccountEntry struct {
	Address string
	Amount  decimal.Decimal
}

// BaseRecord is a native-asset account transaction.
type BaseRecord struct {
	Index       int
	TxID        string
	BlockHeight uint64
	Timestamp   int64
	Senders     []AccountEntry
	Recipients  []AccountEntry
	Status      string
}

// TokenRecord is a token transfer event.
type TokenRecord struct {
	Index        int
	TxHash       string
	BlockHeight  uint64
	Sender       string
	Recipient    string
	TokenName    string
	TokenSymbol  string
	TokensAmount string
	Timestamp    int64
}

// InternalRecord is a value movement triggered by contract execution.
type InternalRecord struct {
	Index       int
	ParentHash  string
	BlockHeight uint64
	Sender      string
	Recipient   string
	Timestamp   int64
}

// Unknown is an item matching no variant, or more than one.
type Unknown struct {
	Index int
}

// Malformed is an item whose variant was recognized but failed to decode or validate.
type Malformed struct {
	Index int
	Shape Kind
	Err   error
}

func (r UTXORecord) Position() int     { return r.Index }
func (r BaseRecord) Position() int     { return r.Index }
func (r TokenRecord) Position() int    { return r.Index }
func (r InternalRecord) Position() int { return r.Index }
func (r Unknown) Position() int        { return r.Index }
func (r Malformed) Position() int      { return r.Index }

func (UTXORecord) Kind() Kind     { return KindUTXO }
func (BaseRecord) Kind() Kind     { return KindBase }
func (TokenRecord) Kind() Kind    { return KindToken }
func (InternalRecord) Kind() Kind { return KindInternal }
func (Unknown) Kind() Kind        { return KindUnknown }
func (Malformed) Kind() Kind      { return KindMalformed }
