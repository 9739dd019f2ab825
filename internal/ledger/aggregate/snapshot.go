package aggregate

import (
	"time"

	"github.com/goodnatureofminers/ledger7000-backend/internal/ledger/model"
)

// Snapshot is the reporting view of an address ledger.
type Snapshot struct {
	Chain        model.Chain         `json:"chain"`
	Network      model.Network       `json:"network"`
	Address      string              `json:"address"`
	Family       model.Family        `json:"family"`
	Balance      string              `json:"balance"`
	TxCount      uint64              `json:"txCount"`
	TotalFunded  string              `json:"totalFunded"`
	TotalSpent   string              `json:"totalSpent"`
	Transactions []model.Transaction `json:"transactions,omitempty"`
	Funded       []model.Operation   `json:"funded,omitempty"`
	Sent         []model.Operation   `json:"sent,omitempty"`
	UpdatedAt    time.Time           `json:"updatedAt"`
}
