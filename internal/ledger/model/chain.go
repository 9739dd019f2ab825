// Package model defines domain models for address ledgers.
package model

import "fmt"

// Chain is the ticker of a supported blockchain.
type Chain string

// Network distinguishes deployments of the same chain.
type Network string

// Family groups chains by their transaction model.
type Family string

// Category names a provider listing that feeds an address ledger.
type Category string

var (
	BTC  Chain = "BTC"
	BCH  Chain = "BCH"
	LTC  Chain = "LTC"
	DOGE Chain = "DOGE"
	DASH Chain = "DASH"
	ETH  Chain = "ETH"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

const (
	// FamilyUTXO covers Bitcoin-like chains where value moves between output sets.
	FamilyUTXO Family = "utxo"
	// FamilyAccount covers Ethereum-like chains where value moves between account balances.
	FamilyAccount Family = "account"
)

const (
	CategoryTransactions   Category = "transactions"
	CategoryTokenTransfers Category = "tokens-transfers"
	CategoryInternal       Category = "internal"
)

// Categories returns the provider listings that make up a ledger of the family.
func (f Family) Categories() []Category {
	switch f {
	case FamilyUTXO:
		return []Category{CategoryTransactions}
	case FamilyAccount:
		return []Category{CategoryTransactions, CategoryTokenTransfers, CategoryInternal}
	default:
		return nil
	}
}

// ScriptDecoder derives the addresses paid by a hex-encoded locking script.
type ScriptDecoder interface {
	Addresses(script string) ([]string, error)
}

// Canonicalizer converts a chain address into its single authoritative encoding.
type Canonicalizer interface {
	Canonical(address string) (string, error)
}

// ChainProfile carries everything a classifier needs to know about a chain.
type ChainProfile struct {
	Chain   Chain
	Network Network
	Family  Family
	// Precision is the number of decimal places used when rendering amounts.
	Precision int32
	// SuccessStatus is the status code of a successful account transaction.
	SuccessStatus string
	Addresses     Canonicalizer
	// Scripts resolves outputs reported without addresses. Nil on account chains.
	Scripts ScriptDecoder
}

// Canonical converts address with the profile canonicalizer, identity when none is set.
func (p ChainProfile) Canonical(address string) (string, error) {
	if p.Addresses == nil {
		return address, nil
	}
	return p.Addresses.Canonical(address)
}

// Key identifies the ledger of address on the profile chain.
func (p ChainProfile) Key(address string) LedgerKey {
	return LedgerKey{Chain: p.Chain, Network: p.Network, Address: address}
}

// LedgerKey identifies one watched address ledger.
type LedgerKey struct {
	Chain   Chain
	Network Network
	Address string
}

func (k LedgerKey) String() string {
	return fmt.Sprintf("%s:%s:%s", k.Chain, k.Network, k.Address)
}
