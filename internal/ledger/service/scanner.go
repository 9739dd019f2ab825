// Package service drives ledger scans: fetch, classify, aggregate and persist.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/clock"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/aggregate"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/chains"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/classify"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/raw"
	"github.com/goodnatureofminers/ledger7000-backend/pkg/workerpool"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultWorkerCount = 4
	defaultInterval    = 5 * time.Minute
)

// Config tunes the scan loop.
type Config struct {
	Workers  int
	Interval time.Duration
	// Backoff replaces Interval after a cycle with failures.
	Backoff clock.Backoff
}

type Scanner struct {
	provider Provider
	cache    RawCache
	sink     OperationSink
	registry *aggregate.Registry
	metrics  ScannerMetrics
	logger   *zap.Logger
	cfg      Config

	now       func() time.Time
	newScanID func() string
}

// NewScanner builds a Scanner. cache may be nil to always read from the provider.
func NewScanner(
	cfg Config,
	provider Provider,
	cache RawCache,
	sink OperationSink,
	registry *aggregate.Registry,
	metrics ScannerMetrics,
	logger *zap.Logger,
) *Scanner {
	if cfg.Workers <= 0 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.Backoff.Min <= 0 {
		cfg.Backoff.Min = cfg.Interval / 10
	}
	if cfg.Backoff.Max <= 0 {
		cfg.Backoff.Max = cfg.Interval
	}
	return &Scanner{
		provider:  provider,
		cache:     cache,
		sink:      sink,
		registry:  registry,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		newScanID: uuid.NewString,
	}
}

// Run scans targets repeatedly until ctx is canceled.
func (s *Scanner) Run(ctx context.Context, targets []model.LedgerKey) error {
	failures := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		started := time.Now()
		err := s.ScanAll(ctx, targets)
		s.metrics.ObserveCycle(started)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		wait := s.cfg.Interval
		if err != nil {
			wait = s.cfg.Backoff.Delay(failures)
			failures++
			s.logger.Error("scan cycle finished with errors", zap.Error(err), zap.Duration("retry_in", wait))
		} else {
			failures = 0
			s.logger.Info("scan cycle completed", zap.Int("targets", len(targets)), zap.Duration("sleep", wait))
		}

		if err := clock.SleepWithContext(ctx, wait); err != nil {
			return err
		}
	}
}

// ScanAll scans every target concurrently. A failing target does not stop the others.
func (s *Scanner) ScanAll(ctx context.Context, targets []model.LedgerKey) error {
	return workerpool.Process(ctx, s.cfg.Workers, targets, func(ctx context.Context, target model.LedgerKey) error {
		if err := s.Scan(ctx, target); err != nil {
			return fmt.Errorf("scan %s: %w", target, err)
		}
		return nil
	})
}

// Scan runs one reporting cycle for target and updates its ledger.
//
// Records that cannot be classified are logged and left out; the scan still succeeds.
func (s *Scanner) Scan(ctx context.Context, target model.LedgerKey) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveScan(target.Chain, target.Network, err, started)
	}()

	profile, err := chains.Lookup(target.Chain, target.Network)
	if err != nil {
		return err
	}
	watched, err := profile.Canonical(target.Address)
	if err != nil {
		return fmt.Errorf("watched address: %w", err)
	}
	key := profile.Key(watched)
	logger := s.logger.With(
		zap.String("chain", string(key.Chain)),
		zap.String("network", string(key.Network)),
		zap.String("address", key.Address),
	)
	ledger := s.registry.Ensure(key, profile)

	categories := profile.Family.Categories()
	pages := make([]json.RawMessage, 0, len(categories))
	for _, category := range categories {
		page, err := s.rawBatch(ctx, key, category, logger)
		if err != nil {
			return fmt.Errorf("fetch %s: %w", category, err)
		}
		pages = append(pages, page)
	}
	batch, err := raw.Concat(pages...)
	if err != nil {
		return fmt.Errorf("concat raw batches: %w", err)
	}

	ledger.SetRawTransactions(batch)
	records, err := raw.Tag(ledger.RawTransactions())
	if err != nil {
		return fmt.Errorf("tag raw batch: %w", err)
	}

	res := classify.Batch(records, key.Address, profile)
	if classifyErr := res.Err(); classifyErr != nil {
		logger.Warn("records left out of the ledger", zap.Int("count", len(res.Errs)), zap.Error(classifyErr))
	}
	s.metrics.ObserveRecords(key.Chain, key.Network, res.Classified, res.Skipped, len(res.Errs), res.Operations())

	summary, err := s.provider.AddressSummary(ctx, key)
	if err != nil {
		return fmt.Errorf("address summary: %w", err)
	}
	ledger.Commit(res, summary)

	stored := storedOperations(s.newScanID(), key, s.now(), res)
	if err := s.sink.Write(ctx, stored); err != nil {
		return fmt.Errorf("persist operations: %w", err)
	}

	logger.Info("address scanned",
		zap.Int("records", len(records)),
		zap.Int("operations", len(stored)),
		zap.Duration("took", time.Since(started)),
	)
	return nil
}

// Registry exposes the ledgers built by the scanner.
func (s *Scanner) Registry() *aggregate.Registry {
	return s.registry
}

func (s *Scanner) rawBatch(ctx context.Context, key model.LedgerKey, category model.Category, logger *zap.Logger) (json.RawMessage, error) {
	if s.cache != nil {
		batch, hit, err := s.cache.Get(ctx, key, category)
		switch {
		case err != nil:
			logger.Warn("raw cache lookup failed", zap.String("category", string(category)), zap.Error(err))
		case hit:
			logger.Debug("raw batch served from cache", zap.String("category", string(category)))
			return batch, nil
		}
	}

	batch, err := s.provider.FetchRawBatches(ctx, key, category)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, category, batch); err != nil {
			logger.Warn("raw cache store failed", zap.String("category", string(category)), zap.Error(err))
		}
	}
	return batch, nil
}

func storedOperations(scanID string, key model.LedgerKey, scannedAt time.Time, res classify.Result) []model.StoredOperation {
	out := make([]model.StoredOperation, 0, res.Operations())
	// Index is the position within the side: per transaction for ins and outs,
	// per batch for funded and sent.
	add := func(side model.Side, ops []model.Operation) {
		for i, op := range ops {
			out = append(out, model.StoredOperation{
				ScanID:    scanID,
				Key:       key,
				Side:      side,
				Index:     uint32(i),
				Operation: op,
				ScannedAt: scannedAt,
			})
		}
	}

	for _, tx := range res.Transactions {
		add(model.SideIn, tx.Ins)
		add(model.SideOut, tx.Outs)
	}
	add(model.SideFunded, res.Funded)
	add(model.SideSent, res.Sent)
	return out
}
