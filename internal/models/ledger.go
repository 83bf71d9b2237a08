package models

// Payer is a person's contribution toward one transaction.
type Payer struct {
	Person

	// Amount is the money this person put in. Expected to be positive.
	Amount float64
}

// Transaction is one shared expense inside a ledger.
// Its cost is the sum of the payer amounts and it is split evenly among
// the beneficiaries.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// Description is free text (e.g., "Hotel Booking").
	Description string

	// Payers are the people who paid and how much.
	Payers []Payer

	// Beneficiaries are the people the expense was for.
	// A transaction without beneficiaries distributes no share.
	Beneficiaries []Person
}

// Total returns the sum of all payer amounts.
func (t *Transaction) Total() float64 {
	var total float64
	for _, p := range t.Payers {
		total += p.Amount
	}
	return total
}

// Ledger is an ordered list of transactions recorded for a group.
type Ledger struct {
	// ID is the unique identifier for the ledger (UUID format).
	ID string

	// Name is the display name (e.g., "Tokyo Expenses").
	Name string

	// GroupID is the group whose members this ledger is settled against.
	GroupID string

	// Transactions are kept in insertion order. Ordering does not affect
	// balances.
	Transactions []Transaction

	// CreatedAt is the Unix timestamp when the ledger was created.
	CreatedAt int64
}
