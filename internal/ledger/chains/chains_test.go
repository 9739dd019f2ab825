package chains

import (
	"errors"
	"testing"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name          string
		chain         model.Chain
		network       model.Network
		wantFamily    model.Family
		wantPrecision int32
		wantStatus    string
	}{
		{name: "bitcoin", chain: model.BTC, network: model.Mainnet, wantFamily: model.FamilyUTXO, wantPrecision: 8},
		{name: "bitcoin cash testnet", chain: model.BCH, network: model.Testnet, wantFamily: model.FamilyUTXO, wantPrecision: 8},
		{name: "litecoin", chain: model.LTC, network: model.Mainnet, wantFamily: model.FamilyUTXO, wantPrecision: 8},
		{name: "ethereum", chain: model.ETH, network: model.Mainnet, wantFamily: model.FamilyAccount, wantPrecision: 18, wantStatus: "0x1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(tt.chain, tt.network)
			require.NoError(t, err)
			assert.Equal(t, tt.chain, got.Chain)
			assert.Equal(t, tt.network, got.Network)
			assert.Equal(t, tt.wantFamily, got.Family)
			assert.Equal(t, tt.wantPrecision, got.Precision)
			assert.Equal(t, tt.wantStatus, got.SuccessStatus)
			assert.NotNil(t, got.Addresses)
			assert.Equal(t, tt.wantFamily == model.FamilyUTXO, got.Scripts != nil)
		})
	}
}

func TestLookup_Unsupported(t *testing.T) {
	_, err := Lookup("XMR", model.Mainnet)
	assert.True(t, errors.Is(err, model.ErrUnsupportedChain))

	_, err = Lookup(model.BTC, "signet")
	assert.True(t, errors.Is(err, model.ErrUnsupportedChain))
}

func TestLookup_CanonicalizesPerChain(t *testing.T) {
	bch, err := Lookup(model.BCH, model.Mainnet)
	require.NoError(t, err)
	got, err := bch.Canonical("bitcoincash:qpm2qsznhks23z7629mms6s4cwef74vcwvy22gdx6a")
	require.NoError(t, err)
	assert.Equal(t, "1BpEi6DfDAUFd7GtittLSdBeYJvcoaVggu", got)

	btc, err := Lookup(model.BTC, model.Mainnet)
	require.NoError(t, err)
	got, err = btc.Canonical("bc1q_formatted")
	require.NoError(t, err)
	assert.Equal(t, "bc1q_formatted", got)
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []model.Chain{model.BCH, model.BTC, model.DASH, model.DOGE, model.ETH, model.LTC}, Supported())
}
