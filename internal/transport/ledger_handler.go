// Package transport exposes gRPC/HTTP handlers.
package transport

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/aggregate"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/chains"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// LedgerHandler serves the address ledgers built by the scanner.
type LedgerHandler struct {
	registry *aggregate.Registry
	logger   *zap.Logger
}

// NewLedgerHandler returns a LedgerHandler instance.
func NewLedgerHandler(registry *aggregate.Registry, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		registry: registry,
		logger:   logger.Named("ledgerHandler"),
	}
}

type ledgerRef struct {
	Chain   model.Chain   `json:"chain"`
	Network model.Network `json:"network"`
	Address string        `json:"address"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Register mounts the ledger routes on mux.
func (h *LedgerHandler) Register(mux *gwruntime.ServeMux) error {
	if err := mux.HandlePath(http.MethodGet, "/v1/ledgers", h.List); err != nil {
		return err
	}
	return mux.HandlePath(http.MethodGet, "/v1/ledgers/{chain}/{network}/{address}", h.Get)
}

// List reports every ledger the scanner has built so far.
func (h *LedgerHandler) List(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	keys := h.registry.Keys()
	refs := make([]ledgerRef, 0, len(keys))
	for _, k := range keys {
		refs = append(refs, ledgerRef{Chain: k.Chain, Network: k.Network, Address: k.Address})
	}
	h.write(w, http.StatusOK, refs)
}

// Get reports the ledger of one address. Chain is case-insensitive and the
// address is canonicalized the same way the scanner keys it.
func (h *LedgerHandler) Get(w http.ResponseWriter, _ *http.Request, params map[string]string) {
	chain := model.Chain(strings.ToUpper(params["chain"]))
	network := model.Network(strings.ToLower(params["network"]))

	profile, err := chains.Lookup(chain, network)
	if err != nil {
		h.write(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	address, err := profile.Canonical(params["address"])
	if err != nil {
		h.write(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	ledger, ok := h.registry.Get(profile.Key(address))
	if !ok {
		h.write(w, http.StatusNotFound, errorResponse{Error: errLedgerNotFound.Error()})
		return
	}
	h.write(w, http.StatusOK, ledger.Snapshot())
}

var errLedgerNotFound = errors.New("ledger not found")

func (h *LedgerHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("write response", zap.Error(err))
	}
}
