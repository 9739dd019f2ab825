package cryptoapis

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

var (
	// ErrUnexpectedStatus is returned for a non-2xx response that survived retries.
	ErrUnexpectedStatus = errors.New("unexpected provider status")
	// ErrTooManyPages is returned when a listing does not end within the page limit.
	ErrTooManyPages = errors.New("too many pages")
)

type (
	// Metrics records provider call metrics of one chain and network.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObservePage(category model.Category, items int)
	}

	// MetricsFactory returns the Metrics of chain on network.
	MetricsFactory func(chain model.Chain, network model.Network) Metrics
)

type listEnvelope struct {
	Data struct {
		Limit  int               `json:"limit"`
		Offset int               `json:"offset"`
		Total  int               `json:"total"`
		Items  []json.RawMessage `json:"items"`
	} `json:"data"`
}

type amountWire struct {
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

type summaryEnvelope struct {
	Data struct {
		Item struct {
			TransactionsCount int64      `json:"transactionsCount"`
			ConfirmedBalance  amountWire `json:"confirmedBalance"`
			TotalReceived     amountWire `json:"totalReceived"`
			TotalSpent        amountWire `json:"totalSpent"`
		} `json:"item"`
	} `json:"data"`
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
