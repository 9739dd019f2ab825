// Package address canonicalizes chain addresses before they are compared with a watched address.
package address

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

var (
	errEmpty  = errors.New("empty address")
	errNotHex = errors.New("not a 20-byte hex address")
)

// Identity keeps provider addresses untouched; used by chains with a single encoding.
type Identity struct{}

// Canonical returns address unchanged.
func (Identity) Canonical(address string) (string, error) {
	return address, nil
}

// Ethereum validates hex account addresses and lower-cases them.
type Ethereum struct {
	Chain model.Chain
}

// Canonical returns the lower-case 0x-prefixed form of a hex address.
func (e Ethereum) Canonical(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return "", &model.AddressFormatError{Chain: e.Chain, Address: address, Err: errEmpty}
	}
	if !common.IsHexAddress(trimmed) {
		return "", &model.AddressFormatError{Chain: e.Chain, Address: address, Err: errNotHex}
	}
	return strings.ToLower(common.HexToAddress(trimmed).Hex()), nil
}
