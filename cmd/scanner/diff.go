package main

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/aggregate"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/diff"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/service"
	"github.com/goodnatureofminers/ledger7000-backend/internal/metrics"
)

var errDiffUsage = errors.New("--diff needs --operations and exactly one target")

// discardSink drops operations; a comparison run persists nothing.
type discardSink struct{}

func (discardSink) Write(context.Context, []model.StoredOperation) error { return nil }

// runDiff scans target once and compares its ledger with the export at path.
func runDiff(
	ctx context.Context,
	provider service.Provider,
	cache service.RawCache,
	targets []model.LedgerKey,
	path string,
	logger *zap.Logger,
) (diff.Report, error) {
	if len(targets) != 1 || path == "" {
		return diff.Report{}, errDiffUsage
	}
	target := targets[0]

	export, err := diff.ImportFile(path)
	if err != nil {
		return diff.Report{}, err
	}

	registry := aggregate.NewRegistry()
	scanner := service.NewScanner(service.Config{Workers: 1}, provider, cache, discardSink{}, registry, metrics.NewScanner(), logger.Named("scanner"))
	if err := scanner.Scan(ctx, target); err != nil {
		return diff.Report{}, fmt.Errorf("scan %s: %w", target, err)
	}
	ledger, ok := registry.Get(target)
	if !ok {
		return diff.Report{}, fmt.Errorf("no ledger for %s", target)
	}

	report := diff.Compare(export, diff.Operations(ledger.Snapshot()))
	logReport(logger.With(zap.Stringer("target", target)), report)
	return report, nil
}

func logReport(logger *zap.Logger, report diff.Report) {
	for _, e := range report.Missing {
		logger.Warn("Operation absent from the ledger", entryFields(e)...)
	}
	for _, e := range report.Unexpected {
		logger.Warn("Operation absent from the export", entryFields(e)...)
	}
	logger.Info("Operations compared",
		zap.Int("matched", report.Matched),
		zap.Int("missing", len(report.Missing)),
		zap.Int("unexpected", len(report.Unexpected)),
	)
}

func entryFields(e diff.Entry) []zap.Field {
	return []zap.Field{
		zap.String("txid", e.TxID),
		zap.String("kind", string(e.Kind)),
		zap.String("amount", e.Amount.String()),
		zap.String("address", e.Address),
		zap.String("date", e.Date),
	}
}
