package api

type QuickSplitRequest struct {
	Split *QuickSplit `json:"split"`
}

type QuickSplitResponse struct {
	People      []*SplitPerson `json:"people"`
	Payments    []*Payment     `json:"payments"`
	TotalPaid   float64        `json:"totalPaid"`
	TotalCost   float64        `json:"totalCost"`
	Overpayment float64        `json:"overpayment"`
	Diagram     string         `json:"diagram"`
	Table       []*TableRow    `json:"table"`
}

type SettleLedgerRequest struct {
	Group  *Group  `json:"group"`
	Ledger *Ledger `json:"ledger"`
}

type SettleLedgerResponse struct {
	Settlement *LedgerSettlement `json:"settlement"`
}

type SaveQuickSplitRequest struct {
	Split *QuickSplit `json:"split"`
}

type SaveQuickSplitResponse struct {
	Split *QuickSplit `json:"split"`
}

type GetQuickSplitRequest struct {
	SplitID string `json:"splitId"`
}

type GetQuickSplitResponse struct {
	Split *QuickSplit `json:"split"`
}

// ResizeQuickSplitRequest changes the number of people in a split.
// With Keep set, existing rows survive up to the new size.
type ResizeQuickSplitRequest struct {
	Split      *QuickSplit `json:"split"`
	NoOfPeople int         `json:"noOfPeople"`
	Keep       bool        `json:"keep"`
}

type ResizeQuickSplitResponse struct {
	Split *QuickSplit `json:"split"`
}

type LoadExampleRequest struct{}

type LoadExampleResponse struct {
	QuickSplit *QuickSplit `json:"quickSplit"`
	Group      *Group      `json:"group"`
	Ledger     *Ledger     `json:"ledger"`
}
