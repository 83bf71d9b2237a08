package calculator

// Tolerances below which a floating point balance counts as settled.
const (
	// QuickSplitEpsilon applies to quick split ToPay values.
	QuickSplitEpsilon = 0.001

	// LedgerEpsilon applies to ledger net balances.
	LedgerEpsilon = 0.01
)

// OverpaymentPool is the synthetic payer used for surplus contributions.
const OverpaymentPool = "Overpayment Pool"

// Payment is one peer-to-peer transfer that settles part of a debt.
type Payment struct {
	From   string  // Name of the person paying
	To     string  // Name of the person receiving
	Amount float64 // Always > 0
}

// Balance is a signed amount owed to (positive) or by (negative) a party.
type Balance struct {
	ID     string
	Name   string
	Amount float64
}
