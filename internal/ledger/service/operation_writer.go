package service

import (
	"context"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/pkg/batcher"
	"go.uber.org/zap"
)

// OperationWriter buffers stored operations and inserts them in batches.
type OperationWriter struct {
	batcher *batcher.Batcher[model.StoredOperation]
}

func NewOperationWriter(repo OperationRepository, logger *zap.Logger, cfg batcher.Config) *OperationWriter {
	return &OperationWriter{
		batcher: batcher.New[model.StoredOperation](
			logger.Named("operationBatcher"),
			repo.InsertOperations,
			cfg,
		),
	}
}

// Start begins flushing in the background until ctx is canceled or Stop is called.
func (w *OperationWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes queued operations and waits for the flush loop to exit.
func (w *OperationWriter) Stop() {
	w.batcher.Stop()
}

// Write queues ops for insertion.
func (w *OperationWriter) Write(ctx context.Context, ops []model.StoredOperation) error {
	return w.batcher.Add(ctx, ops...)
}
