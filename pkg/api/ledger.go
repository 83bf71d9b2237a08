package api

type CreateLedgerRequest struct {
	GroupID      string         `json:"groupId"`
	Name         string         `json:"name"`
	Transactions []*Transaction `json:"transactions"`
}

type CreateLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type GetLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
}

type GetLedgerResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type ListLedgersRequest struct {
	GroupID string `json:"groupId"`
}

type ListLedgersResponse struct {
	Ledgers []*Ledger `json:"ledgers"`
}

type AddTransactionRequest struct {
	LedgerID    string       `json:"ledgerId"`
	Transaction *Transaction `json:"transaction"`
}

type AddTransactionResponse struct {
	Ledger *Ledger `json:"ledger"`
}

type DeleteLedgerRequest struct {
	LedgerID string `json:"ledgerId"`
}

type DeleteLedgerResponse struct{}

type GetLedgerSettlementRequest struct {
	LedgerID string `json:"ledgerId"`
}

type GetLedgerSettlementResponse struct {
	Settlement *LedgerSettlement `json:"settlement"`
}
