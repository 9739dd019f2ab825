package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

const insertOperationsQuery = `
INSERT INTO ledger_operations (
	scan_id,
	chain,
	network,
	watched_address,
	side,
	kind,
	txid,
	op_index,
	block_height,
	timestamp,
	amount,
	address,
	token_symbol,
	token_name,
	token_amount,
	scanned_at
) VALUES`

// InsertOperations stores classified operations in ClickHouse.
func (r *Repository) InsertOperations(ctx context.Context, ops []model.StoredOperation) error {
	start := time.Now()
	var err error
	defer func() {
		chain, network := firstKey(ops)
		r.metrics.Observe("insert_operations", chain, network, err, start)
	}()

	if len(ops) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertOperationsQuery)
	if err != nil {
		return fmt.Errorf("prepare operations batch: %w", err)
	}

	for _, stored := range ops {
		var row []any
		row, err = operationRow(stored)
		if err != nil {
			_ = batch.Abort()
			return fmt.Errorf("operation %s: %w", stored.Operation.TxID(), err)
		}
		if err = batch.Append(row...); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append operation: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert operations: %w", err)
	}
	r.metrics.ObserveRows("insert_operations", len(ops))
	return nil
}

func operationRow(stored model.StoredOperation) ([]any, error) {
	op := stored.Operation

	ts, err := time.ParseInLocation(model.TimestampLayout, op.Timestamp(), time.UTC)
	if err != nil {
		return nil, fmt.Errorf("parse timestamp: %w", err)
	}

	var blockHeight *uint64
	if h, ok := op.BlockHeight(); ok {
		blockHeight = &h
	}

	token, _ := op.Token()

	return []any{
		stored.ScanID,
		string(stored.Key.Chain),
		string(stored.Key.Network),
		stored.Key.Address,
		string(stored.Side),
		string(op.Kind()),
		op.TxID(),
		stored.Index,
		blockHeight,
		ts,
		op.Amount(),
		op.Address(),
		token.Symbol,
		token.Name,
		token.Amount,
		stored.ScannedAt,
	}, nil
}

func firstKey(ops []model.StoredOperation) (model.Chain, model.Network) {
	if len(ops) == 0 {
		return "", ""
	}
	return ops[0].Key.Chain, ops[0].Key.Network
}
