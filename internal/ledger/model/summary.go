package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summary holds the address statistics reported by the provider.
type Summary struct {
	Balance decimal.Decimal
	TxCount uint64
	Funded  decimal.Decimal
	Spent   decimal.Decimal
}

// Side tells which ledger list a stored operation belongs to.
type Side string

var (
	SideIn     Side = "in"
	SideOut    Side = "out"
	SideFunded Side = "funded"
	SideSent   Side = "sent"
)

// StoredOperation is an operation together with the ledger context it is persisted under.
type StoredOperation struct {
	ScanID string
	Key    LedgerKey
	Side   Side
	// Index orders operations of the same side and transaction.
	Index     uint32
	Operation Operation
	ScannedAt time.Time
}
