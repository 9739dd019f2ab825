// Package aggregate holds the in-memory ledger of every watched address.
package aggregate

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/classify"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/shopspring/decimal"
)

// Address is the ledger of one watched address.
//
// Derived state is written by a single scan at a time; readers may run concurrently.
type Address struct {
	mu sync.RWMutex

	key       model.LedgerKey
	family    model.Family
	precision int32

	raw          json.RawMessage
	balance      decimal.Decimal
	stats        model.Summary
	transactions []model.Transaction
	funded       []model.Operation
	sent         []model.Operation
	updatedAt    time.Time
}

// NewAddress creates an empty ledger for key, rendering amounts at the
// precision of profile.
func NewAddress(key model.LedgerKey, profile model.ChainProfile) *Address {
	return &Address{
		key:       key,
		family:    profile.Family,
		precision: profile.Precision,
		balance:   decimal.Zero,
		stats: model.Summary{
			Balance: decimal.Zero,
			Funded:  decimal.Zero,
			Spent:   decimal.Zero,
		},
	}
}

func (a *Address) Key() model.LedgerKey { return a.key }

func (a *Address) Family() model.Family { return a.family }

// SetBalance replaces the reported balance.
func (a *Address) SetBalance(balance decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.balance = balance
	a.stats.Balance = balance
	a.touch()
}

// SetStats replaces the running statistics.
func (a *Address) SetStats(txCount uint64, funded, spent decimal.Decimal) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stats.TxCount = txCount
	a.stats.Funded = funded
	a.stats.Spent = spent
	a.touch()
}

// SetTransactions replaces the transaction history.
func (a *Address) SetTransactions(txs []model.Transaction) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.transactions = append([]model.Transaction(nil), txs...)
	a.touch()
}

// AddFundedOperation appends op to the funded list.
func (a *Address) AddFundedOperation(op model.Operation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.funded = append(a.funded, op)
	a.touch()
}

// AddSentOperation appends op to the sent list.
func (a *Address) AddSentOperation(op model.Operation) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sent = append(a.sent, op)
	a.touch()
}

// ResetOperations drops the funded and sent lists before a new cycle appends to them.
func (a *Address) ResetOperations() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.funded = nil
	a.sent = nil
	a.touch()
}

// SetRawTransactions stores the serialized raw batch of the current cycle.
func (a *Address) SetRawTransactions(batch json.RawMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.raw = append(json.RawMessage(nil), batch...)
}

// RawTransactions returns a copy of the stored raw batch.
func (a *Address) RawTransactions() json.RawMessage {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append(json.RawMessage(nil), a.raw...)
}

// Apply stores a classification result: transactions replace the previous
// history, account operations are appended. Statistics are left untouched.
func (a *Address) Apply(res classify.Result) {
	if a.family == model.FamilyUTXO {
		a.SetTransactions(res.Transactions)
		return
	}
	for _, op := range res.Funded {
		a.AddFundedOperation(op)
	}
	for _, op := range res.Sent {
		a.AddSentOperation(op)
	}
}

// Commit replaces the derived state of the address with one cycle's outcome
// under a single lock: the history of its family and the provider summary.
// Readers observe either the previous cycle or this one, never a mix.
func (a *Address) Commit(res classify.Result, summary model.Summary) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.family == model.FamilyUTXO {
		a.transactions = append([]model.Transaction(nil), res.Transactions...)
	} else {
		a.funded = append([]model.Operation(nil), res.Funded...)
		a.sent = append([]model.Operation(nil), res.Sent...)
	}
	a.balance = summary.Balance
	a.stats = summary
	a.touch()
}

func (a *Address) Balance() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.balance
}

func (a *Address) Stats() model.Summary {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.stats
}

func (a *Address) Transactions() []model.Transaction {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]model.Transaction(nil), a.transactions...)
}

func (a *Address) FundedOperations() []model.Operation {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]model.Operation(nil), a.funded...)
}

func (a *Address) SentOperations() []model.Operation {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return append([]model.Operation(nil), a.sent...)
}

// Snapshot returns a point-in-time copy of the ledger for reporting.
func (a *Address) Snapshot() Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return Snapshot{
		Chain:        a.key.Chain,
		Network:      a.key.Network,
		Address:      a.key.Address,
		Family:       a.family,
		Balance:      a.balance.StringFixed(a.precision),
		TxCount:      a.stats.TxCount,
		TotalFunded:  a.stats.Funded.StringFixed(a.precision),
		TotalSpent:   a.stats.Spent.StringFixed(a.precision),
		Transactions: append([]model.Transaction(nil), a.transactions...),
		Funded:       append([]model.Operation(nil), a.funded...),
		Sent:         append([]model.Operation(nil), a.sent...),
		UpdatedAt:    a.updatedAt,
	}
}

func (a *Address) touch() {
	a.updatedAt = time.Now().UTC()
}
