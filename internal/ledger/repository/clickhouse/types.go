package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, chain model.Chain, network model.Network, err error, started time.Time)
		ObserveRows(operation string, rows int)
	}

	// Conn is the part of a ClickHouse connection the repository writes through.
	Conn interface {
		PrepareBatch(ctx context.Context, query string) (Batch, error)
		Close() error
	}

	Batch interface {
		Append(v ...any) error
		Send() error
		Abort() error
	}
)
