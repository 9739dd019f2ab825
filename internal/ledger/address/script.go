package address

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

// Script derives the addresses paid by a locking script.
type Script struct {
	chain  model.Chain
	params *chaincfg.Params
}

type versionBytes struct {
	pubKeyHash byte
	scriptHash byte
	segwitHRP  string
}

// Version bytes of the Bitcoin forks btcd ships no params for.
var forkVersions = map[model.Chain]map[model.Network]versionBytes{
	model.LTC: {
		model.Mainnet: {pubKeyHash: 0x30, scriptHash: 0x32, segwitHRP: "ltc"},
		model.Testnet: {pubKeyHash: 0x6f, scriptHash: 0x3a, segwitHRP: "tltc"},
	},
	model.DOGE: {
		model.Mainnet: {pubKeyHash: 0x1e, scriptHash: 0x16},
		model.Testnet: {pubKeyHash: 0x71, scriptHash: 0xc4},
	},
	model.DASH: {
		model.Mainnet: {pubKeyHash: 0x4c, scriptHash: 0x10},
		model.Testnet: {pubKeyHash: 0x8c, scriptHash: 0x13},
	},
}

// NewScript builds a decoder for chain on network. Bitcoin Cash scripts decode to
// legacy addresses, the canonical Bitcoin Cash encoding.
func NewScript(chain model.Chain, network model.Network) (*Script, error) {
	var base chaincfg.Params
	switch network {
	case model.Mainnet:
		base = chaincfg.MainNetParams
	case model.Testnet:
		base = chaincfg.TestNet3Params
	default:
		return nil, fmt.Errorf("%w: %s network %q", model.ErrUnsupportedChain, chain, network)
	}

	switch chain {
	case model.BTC, model.BCH:
	default:
		version, ok := forkVersions[chain][network]
		if !ok {
			return nil, fmt.Errorf("%w: no script params for %s", model.ErrUnsupportedChain, chain)
		}
		base.PubKeyHashAddrID = version.pubKeyHash
		base.ScriptHashAddrID = version.scriptHash
		base.Bech32HRPSegwit = version.segwitHRP
	}
	return &Script{chain: chain, params: &base}, nil
}

// Addresses returns the addresses paid by the hex-encoded script. Scripts that pay
// no address, such as OP_RETURN outputs, yield an empty list.
func (s *Script) Addresses(script string) ([]string, error) {
	scriptBytes, err := hex.DecodeString(script)
	if err != nil {
		return nil, &model.AddressFormatError{Chain: s.chain, Address: script, Err: err}
	}
	_, addrs, _, err := txscript.ExtractPkScriptAddrs(scriptBytes, s.params)
	if err != nil {
		return nil, &model.AddressFormatError{Chain: s.chain, Address: script, Err: err}
	}

	result := make([]string, 0, len(addrs))
	for _, addr := range addrs {
		result = append(result, addr.EncodeAddress())
	}
	return result, nil
}
