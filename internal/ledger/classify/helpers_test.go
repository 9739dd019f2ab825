package classify

import (
	"fmt"
	"testing"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/chains"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/raw"
	"github.com/shopspring/decimal"
)

func profile(t *testing.T, chain model.Chain) model.ChainProfile {
	t.Helper()
	p, err := chains.Lookup(chain, model.Mainnet)
	if err != nil {
		t.Fatalf("Lookup(%s) error = %v", chain, err)
	}
	return p
}

func entry(value string, addresses ...string) raw.Entry {
	return raw.Entry{Addresses: addresses, Value: decimal.RequireFromString(value)}
}

func accountEntry(address, amount string) raw.AccountEntry {
	return raw.AccountEntry{Address: address, Amount: decimal.RequireFromString(amount)}
}

// view renders operations as "kind|address|amount|txid" for comparison.
func view(ops []model.Operation) []string {
	out := make([]string, 0, len(ops))
	for _, op := range ops {
		out = append(out, fmt.Sprintf("%s|%s|%s|%s", op.Kind(), op.Address(), op.AmountString(), op.TxID()))
	}
	return out
}
