package cryptoapis

import (
	"fmt"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

var blockchains = map[model.Chain]string{
	model.BTC:  "bitcoin",
	model.BCH:  "bitcoin-cash",
	model.LTC:  "litecoin",
	model.DOGE: "dogecoin",
	model.DASH: "dash",
	model.ETH:  "ethereum",
}

// ethereumTestnet is the only Ethereum test network the provider still serves.
const ethereumTestnet = "sepolia"

// route returns the blockchain and network path segments of chain on network.
func route(chain model.Chain, network model.Network) (string, string, error) {
	blockchain, ok := blockchains[chain]
	if !ok {
		return "", "", fmt.Errorf("%w: %q", model.ErrUnsupportedChain, chain)
	}
	switch network {
	case model.Mainnet:
		return blockchain, "mainnet", nil
	case model.Testnet:
		if chain == model.ETH {
			return blockchain, ethereumTestnet, nil
		}
		return blockchain, "testnet", nil
	default:
		return "", "", fmt.Errorf("%w: %s network %q", model.ErrUnsupportedChain, chain, network)
	}
}
