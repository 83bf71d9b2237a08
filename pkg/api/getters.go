package api

// Nil-safe ID getters, shaped like generated message accessors. Interceptors
// use them to tag log lines without knowing the concrete request type.

func (x *GetGroupRequest) GetGroupID() string {
	if x != nil {
		return x.GroupID
	}
	return ""
}

func (x *UpdateGroupRequest) GetGroupID() string {
	if x != nil {
		return x.GroupID
	}
	return ""
}

func (x *DeleteGroupRequest) GetGroupID() string {
	if x != nil {
		return x.GroupID
	}
	return ""
}

func (x *GetGroupSettlementsRequest) GetGroupID() string {
	if x != nil {
		return x.GroupID
	}
	return ""
}

func (x *CreateLedgerRequest) GetGroupID() string {
	if x != nil {
		return x.GroupID
	}
	return ""
}

func (x *ListLedgersRequest) GetGroupID() string {
	if x != nil {
		return x.GroupID
	}
	return ""
}

func (x *GetLedgerRequest) GetLedgerID() string {
	if x != nil {
		return x.LedgerID
	}
	return ""
}

func (x *AddTransactionRequest) GetLedgerID() string {
	if x != nil {
		return x.LedgerID
	}
	return ""
}

func (x *DeleteLedgerRequest) GetLedgerID() string {
	if x != nil {
		return x.LedgerID
	}
	return ""
}

func (x *GetLedgerSettlementRequest) GetLedgerID() string {
	if x != nil {
		return x.LedgerID
	}
	return ""
}

func (x *GetQuickSplitRequest) GetSplitID() string {
	if x != nil {
		return x.SplitID
	}
	return ""
}

// GetLedgerID returns the ID of the inline ledger, if any.
func (x *SettleLedgerRequest) GetLedgerID() string {
	if x != nil && x.Ledger != nil {
		return x.Ledger.ID
	}
	return ""
}
