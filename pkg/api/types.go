package api

// Person is a group member.
type Person struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Group is a named set of people.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []*Person `json:"members"`
	CreatedAt int64     `json:"createdAt"`
}

// Payer is a person's contribution toward a transaction.
type Payer struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Transaction is one shared expense.
type Transaction struct {
	ID            string    `json:"id"`
	Description   string    `json:"description"`
	Payers        []*Payer  `json:"payers"`
	Beneficiaries []*Person `json:"beneficiaries"`
}

// Ledger is an ordered list of transactions for a group.
type Ledger struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	GroupID      string         `json:"groupId"`
	Transactions []*Transaction `json:"transactions"`
	CreatedAt    int64          `json:"createdAt"`
}

// SplitEntry is one row of a quick split.
type SplitEntry struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Paid   float64 `json:"paid"`
	Cost   float64 `json:"cost"`
	Locked bool    `json:"locked"`
}

// QuickSplit is a shared total and the people splitting it.
type QuickSplit struct {
	ID              string        `json:"id"`
	TotalAmount     float64       `json:"totalAmount"`
	TotalNoOfPeople int           `json:"totalNoOfPeople"`
	Mode            string        `json:"mode"`
	People          []*SplitEntry `json:"people"`
	UpdatedAt       int64         `json:"updatedAt"`
}

// Payment is a single transfer that settles part of a debt.
type Payment struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// SplitPerson is a quick split row after settlement.
type SplitPerson struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Paid   float64 `json:"paid"`
	Cost   float64 `json:"cost"`
	ToPay  float64 `json:"toPay"`
	Solved bool    `json:"solved"`
}

// Transfer is an outgoing payment shown in a table row.
type Transfer struct {
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// TableRow is one row of the quick split result table.
type TableRow struct {
	ID        int         `json:"id"`
	Name      string      `json:"name"`
	Paid      float64     `json:"paid"`
	AmountDue float64     `json:"amountDue"`
	Transfers []*Transfer `json:"transfers"`
}

// MemberBalance is a group member's position within a ledger.
type MemberBalance struct {
	PersonID   string  `json:"personId"`
	Name       string  `json:"name"`
	TotalPaid  float64 `json:"totalPaid"`
	TotalShare float64 `json:"totalShare"`
	NetBalance float64 `json:"netBalance"`
}

// Balance is a leftover amount the settlement could not clear.
type Balance struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// LedgerSettlement is the settled view of one ledger.
type LedgerSettlement struct {
	LedgerID string           `json:"ledgerId"`
	Balances []*MemberBalance `json:"balances"`

	Settlements []*Payment `json:"settlements"`
	Unsettled   []*Balance `json:"unsettled"`

	// SkippedTransactionIDs lists transactions without beneficiaries.
	SkippedTransactionIDs []string `json:"skippedTransactionIds"`

	// Diagram is a Mermaid flowchart of the settlements.
	Diagram string `json:"diagram"`
}
