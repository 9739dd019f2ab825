package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Provider reads raw address listings and summaries from the data provider.
	Provider interface {
		FetchRawBatches(ctx context.Context, key model.LedgerKey, category model.Category) (json.RawMessage, error)
		AddressSummary(ctx context.Context, key model.LedgerKey) (model.Summary, error)
	}

	RawCache interface {
		Get(ctx context.Context, key model.LedgerKey, category model.Category) (json.RawMessage, bool, error)
		Set(ctx context.Context, key model.LedgerKey, category model.Category, batch json.RawMessage) error
	}

	// OperationSink persists the operations of a scan.
	OperationSink interface {
		Write(ctx context.Context, ops []model.StoredOperation) error
	}

	OperationRepository interface {
		InsertOperations(ctx context.Context, ops []model.StoredOperation) error
	}

	ScannerMetrics interface {
		ObserveScan(chain model.Chain, network model.Network, err error, started time.Time)
		ObserveRecords(chain model.Chain, network model.Network, classified, skipped, malformed, operations int)
		ObserveCycle(started time.Time)
	}
)
