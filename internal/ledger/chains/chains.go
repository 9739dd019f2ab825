// Package chains holds the built-in chain profiles.
package chains

import (
	"fmt"
	"sort"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/address"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

const (
	utxoPrecision    int32 = 8
	accountPrecision int32 = 18

	ethereumSuccessStatus = "0x1"
)

var families = map[model.Chain]model.Family{
	model.BTC:  model.FamilyUTXO,
	model.BCH:  model.FamilyUTXO,
	model.LTC:  model.FamilyUTXO,
	model.DOGE: model.FamilyUTXO,
	model.DASH: model.FamilyUTXO,
	model.ETH:  model.FamilyAccount,
}

// Lookup returns the profile of chain on network.
func Lookup(chain model.Chain, network model.Network) (model.ChainProfile, error) {
	family, ok := families[chain]
	if !ok {
		return model.ChainProfile{}, fmt.Errorf("%w: %q", model.ErrUnsupportedChain, chain)
	}
	if network != model.Mainnet && network != model.Testnet {
		return model.ChainProfile{}, fmt.Errorf("%w: %s network %q", model.ErrUnsupportedChain, chain, network)
	}

	profile := model.ChainProfile{
		Chain:   chain,
		Network: network,
		Family:  family,
	}
	switch chain {
	case model.BCH:
		scripts, err := address.NewScript(chain, network)
		if err != nil {
			return model.ChainProfile{}, err
		}
		profile.Scripts = scripts
		canonicalizer, err := address.NewBitcoinCash(network)
		if err != nil {
			return model.ChainProfile{}, err
		}
		profile.Precision = utxoPrecision
		profile.Addresses = canonicalizer
	case model.ETH:
		profile.Precision = accountPrecision
		profile.SuccessStatus = ethereumSuccessStatus
		profile.Addresses = address.Ethereum{Chain: chain}
	default:
		scripts, err := address.NewScript(chain, network)
		if err != nil {
			return model.ChainProfile{}, err
		}
		profile.Precision = utxoPrecision
		profile.Addresses = address.Identity{}
		profile.Scripts = scripts
	}
	return profile, nil
}

// Supported lists the chains Lookup knows about.
func Supported() []model.Chain {
	out := make([]model.Chain, 0, len(families))
	for chain := range families {
		out = append(out, chain)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
