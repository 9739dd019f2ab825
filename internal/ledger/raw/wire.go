package raw

type utxoWire struct {
	TransactionID      string               `json:"transactionId" validate:"required"`
	MinedInBlockHeight *uint64              `json:"minedInBlockHeight" validate:"required"`
	Timestamp          *int64               `json:"timestamp" validate:"required"`
	BlockchainSpecific utxoBlockchainFields `json:"blockchainSpecific"`
}

type utxoBlockchainFields struct {
	Vin  []vinWire  `json:"vin" validate:"dive"`
	Vout []voutWire `json:"vout" validate:"dive"`
}

type vinWire struct {
	Addresses []string `json:"addresses"`
	Value     string   `json:"value" validate:"required,numeric"`
}

type voutWire struct {
	ScriptPubKey struct {
		Addresses []string `json:"addresses"`
		Hex       string   `json:"hex" validate:"omitempty,hexadecimal"`
	} `json:"scriptPubKey"`
	Value string `json:"value" validate:"required,numeric"`
}

type baseWire struct {
	TransactionID      string              `json:"transactionId" validate:"required"`
	MinedInBlockHeight *uint64             `json:"minedInBlockHeight" validate:"required"`
	Timestamp          *int64              `json:"timestamp" validate:"required"`
	Senders            []accountEntryWire  `json:"senders" validate:"dive"`
	Recipients         []accountEntryWire  `json:"recipients" validate:"dive"`
	BlockchainSpecific accountStatusFields `json:"blockchainSpecific"`
}

type accountEntryWire struct {
	Address string `json:"address" validate:"required"`
	Amount  string `json:"amount" validate:"required,numeric"`
}

type accountStatusFields struct {
	TransactionStatus string `json:"transactionStatus" validate:"required"`
}

type tokenWire struct {
	TransactionHash      string  `json:"transactionHash" validate:"required"`
	MinedInBlockHeight   *uint64 `json:"minedInBlockHeight" validate:"required"`
	SenderAddress        string  `json:"senderAddress" validate:"required"`
	RecipientAddress     string  `json:"recipientAddress" validate:"required"`
	TokenName            string  `json:"tokenName"`
	TokenSymbol          string  `json:"tokenSymbol"`
	TokensAmount         string  `json:"tokensAmount" validate:"required,numeric"`
	TransactionTimestamp *int64  `json:"transactionTimestamp" validate:"required"`
}

type internalWire struct {
	ParentHash         string  `json:"parentHash" validate:"required"`
	MinedInBlockHeight *uint64 `json:"minedInBlockHeight" validate:"required"`
	Sender             string  `json:"sender" validate:"required"`
	Recipient          string  `json:"recipient" validate:"required"`
	Timestamp          *int64  `json:"timestamp" validate:"required"`
}
