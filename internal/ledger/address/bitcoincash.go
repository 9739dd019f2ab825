package address

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	bchcfg "github.com/gcash/bchd/chaincfg"
	"github.com/gcash/bchutil"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

// BitcoinCash converts cash-addresses into their legacy base58 equivalent.
type BitcoinCash struct {
	legacy *chaincfg.Params
	cash   *bchcfg.Params
}

// NewBitcoinCash builds a canonicalizer for the given Bitcoin Cash network.
// Legacy Bitcoin Cash addresses share version bytes with Bitcoin, so the Bitcoin
// params are used to encode them.
func NewBitcoinCash(network model.Network) (*BitcoinCash, error) {
	switch network {
	case model.Mainnet:
		return &BitcoinCash{legacy: &chaincfg.MainNetParams, cash: &bchcfg.MainNetParams}, nil
	case model.Testnet:
		return &BitcoinCash{legacy: &chaincfg.TestNet3Params, cash: &bchcfg.TestNet3Params}, nil
	default:
		return nil, fmt.Errorf("%w: BCH network %q", model.ErrUnsupportedChain, network)
	}
}

// Canonical returns the legacy encoding of a cash-address, or a validated legacy address unchanged.
func (c *BitcoinCash) Canonical(address string) (string, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return "", c.fail(address, errEmpty)
	}

	if legacy, ok := c.decodeLegacy(trimmed); ok {
		return legacy, nil
	}

	cash := strings.ToLower(trimmed)
	if !strings.Contains(cash, ":") {
		cash = c.cash.CashAddressPrefix + ":" + cash
	}
	decoded, err := bchutil.DecodeAddress(cash, c.cash)
	if err != nil {
		return "", c.fail(address, err)
	}

	var legacy btcutil.Address
	switch a := decoded.(type) {
	case *bchutil.AddressPubKeyHash:
		legacy, err = btcutil.NewAddressPubKeyHash(a.Hash160()[:], c.legacy)
	case *bchutil.AddressScriptHash:
		legacy, err = btcutil.NewAddressScriptHashFromHash(a.Hash160()[:], c.legacy)
	default:
		err = fmt.Errorf("unsupported address type %T", decoded)
	}
	if err != nil {
		return "", c.fail(address, err)
	}
	return legacy.EncodeAddress(), nil
}

func (c *BitcoinCash) decodeLegacy(address string) (string, bool) {
	decoded, err := btcutil.DecodeAddress(address, c.legacy)
	if err != nil || !decoded.IsForNet(c.legacy) {
		return "", false
	}
	switch decoded.(type) {
	case *btcutil.AddressPubKeyHash, *btcutil.AddressScriptHash:
		return decoded.EncodeAddress(), true
	default:
		return "", false
	}
}

func (c *BitcoinCash) fail(address string, err error) error {
	return &model.AddressFormatError{Chain: model.BCH, Address: address, Err: err}
}
