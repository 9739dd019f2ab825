package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

func (s *RepositorySuite) TestInsertOperations() {
	ops := []model.StoredOperation{
		newStoredOperation(model.Received, model.SideFunded, nil),
		newStoredOperation(model.SentToken, model.SideSent, &model.Token{Symbol: "USDT", Name: "Tether USD", Amount: "10"}),
	}

	s.metrics.EXPECT().ObserveRows("insert_operations", 2)
	s.metrics.EXPECT().Observe("insert_operations", model.ETH, model.Mainnet, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertOperations(s.testCtx, ops))
	s.Equal(uint64(2), s.countRows("SELECT count() FROM ledger_operations"))
	s.Equal(uint64(1), s.countRows("SELECT count() FROM ledger_operations WHERE token_symbol = ?", "USDT"))
	s.Equal(uint64(1), s.countRows("SELECT count() FROM ledger_scans FINAL WHERE watched_address = ? AND scan_id = ?", testKey.Address, "scan-1"))
}

func (s *RepositorySuite) TestInsertOperationsKeepsExactAmounts() {
	height := uint64(7)
	op := model.StoredOperation{
		ScanID: "scan-2",
		Key:    model.LedgerKey{Chain: model.BTC, Network: model.Mainnet, Address: "1Watched"},
		Side:   model.SideIn,
		Operation: model.NewOperation(model.OperationParams{
			Timestamp:   "2023-11-14 22:13:30",
			Amount:      decimal.RequireFromString("0.123456789012345678"),
			Precision:   8,
			Address:     "1Counterparty",
			TxID:        "tx",
			Kind:        model.Received,
			BlockHeight: &height,
		}),
		ScannedAt: time.Now().UTC(),
	}

	s.metrics.EXPECT().ObserveRows("insert_operations", 1)
	s.metrics.EXPECT().Observe("insert_operations", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertOperations(s.testCtx, []model.StoredOperation{op}))

	rows, err := s.conn.Query(s.testCtx, "SELECT toString(amount), block_height FROM ledger_operations WHERE scan_id = ?", "scan-2")
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(rows.Close())
	}()

	var (
		amount string
		stored *uint64
	)
	s.Require().True(rows.Next())
	s.Require().NoError(rows.Scan(&amount, &stored))
	s.Equal("0.123456789012345678", amount)
	s.Require().NotNil(stored)
	s.Equal(height, *stored)
}

func (s *RepositorySuite) TestInsertOperationsKeepsEqualOperationsAfterMerge() {
	key := model.LedgerKey{Chain: model.BTC, Network: model.Mainnet, Address: "1Watched"}
	entry := func(side model.Side, index uint32, kind model.OperationKind, amount string) model.StoredOperation {
		height := uint64(100)
		return model.StoredOperation{
			ScanID: "scan-3",
			Key:    key,
			Side:   side,
			Index:  index,
			Operation: model.NewOperation(model.OperationParams{
				Timestamp:   "2023-11-14 22:13:30",
				Amount:      decimal.RequireFromString(amount),
				Precision:   8,
				Address:     "1Watched",
				TxID:        "tx-split",
				Kind:        kind,
				BlockHeight: &height,
			}),
			ScannedAt: testScannedAt,
		}
	}
	ops := []model.StoredOperation{
		entry(model.SideIn, 0, model.Received, "2"),
		entry(model.SideIn, 1, model.Received, "2"),
		entry(model.SideOut, 0, model.Sent, "5"),
		entry(model.SideOut, 1, model.Sent, "3"),
		entry(model.SideOut, 2, model.Sent, "3"),
	}

	s.metrics.EXPECT().ObserveRows("insert_operations", len(ops))
	s.metrics.EXPECT().Observe("insert_operations", model.BTC, model.Mainnet, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertOperations(s.testCtx, ops))
	s.Require().NoError(s.conn.Exec(s.testCtx, "OPTIMIZE TABLE ledger_operations FINAL"))

	s.Equal(uint64(3), s.countRows("SELECT count() FROM ledger_operations FINAL WHERE scan_id = ? AND side = ?", "scan-3", "out"))
	s.Equal(uint64(2), s.countRows("SELECT count() FROM ledger_operations FINAL WHERE scan_id = ? AND side = ?", "scan-3", "in"))
}
