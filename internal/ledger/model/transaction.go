package model

// Transaction groups the operations a UTXO transaction produced for a watched address.
type Transaction struct {
	BlockHeight uint64 `json:"blockHeight"`
	Timestamp   string `json:"timestamp"`
	TxID        string `json:"txid"`
	// Ins are the operations materialized from the transaction inputs.
	Ins []Operation `json:"ins"`
	// Outs are the operations materialized from the transaction outputs.
	Outs []Operation `json:"outs"`
}

// Empty reports whether the transaction did not touch the watched address.
func (t Transaction) Empty() bool {
	return len(t.Ins) == 0 && len(t.Outs) == 0
}
