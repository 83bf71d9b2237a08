package calculator

import "github.com/mmynk/moneysplitter/internal/models"

// MemberBalance represents the balance information for one group member.
type MemberBalance struct {
	Person     models.Person
	TotalPaid  float64 // Total amount paid across all transactions
	TotalShare float64 // Total share of expenses this person benefited from
	NetBalance float64 // Positive = owed money, Negative = owes money
}

// LedgerBalances is the result of folding a ledger into member balances.
type LedgerBalances struct {
	// Members holds one record per group member, in member order.
	Members []MemberBalance

	// Skipped lists the IDs of transactions without beneficiaries. Their
	// payers are still credited, so the balances no longer sum to zero.
	Skipped []string
}

// LedgerSettlement is a ledger's balances plus the payments that settle them.
type LedgerSettlement struct {
	LedgerBalances

	Settlements []Payment

	// Unsettled holds balances the optimizer could not clear, which only
	// happens when the input was not zero-sum (see Skipped).
	Unsettled []Balance
}

// CalculateLedgerBalances computes paid, share and net balance per member.
//
// Algorithm:
// - For each transaction: every payer is credited with what they paid
// - The sum of payer amounts is split evenly among the beneficiaries
// - net_balance = total_paid - total_share
//
// People who are not members of the group are ignored.
func CalculateLedgerBalances(group models.Group, ledger models.Ledger) LedgerBalances {
	members := make([]MemberBalance, 0, len(group.Members))
	index := make(map[string]int, len(group.Members))
	for _, m := range group.Members {
		if _, exists := index[m.ID]; exists {
			continue
		}
		index[m.ID] = len(members)
		members = append(members, MemberBalance{Person: m})
	}

	var skipped []string
	for _, tx := range ledger.Transactions {
		for _, payer := range tx.Payers {
			if i, ok := index[payer.ID]; ok {
				members[i].TotalPaid += payer.Amount
			}
		}

		if len(tx.Beneficiaries) == 0 {
			skipped = append(skipped, tx.ID)
			continue
		}

		share := tx.Total() / float64(len(tx.Beneficiaries))
		for _, b := range tx.Beneficiaries {
			if i, ok := index[b.ID]; ok {
				members[i].TotalShare += share
			}
		}
	}

	for i := range members {
		members[i].NetBalance = members[i].TotalPaid - members[i].TotalShare
	}

	return LedgerBalances{Members: members, Skipped: skipped}
}

// SettleLedger computes member balances and the payments that settle them.
func SettleLedger(group models.Group, ledger models.Ledger) LedgerSettlement {
	balances := CalculateLedgerBalances(group, ledger)

	input := make([]Balance, len(balances.Members))
	for i, m := range balances.Members {
		input[i] = Balance{ID: m.Person.ID, Name: m.Person.Name, Amount: m.NetBalance}
	}
	payments, residual := OptimizeSettlements(input, LedgerEpsilon)

	return LedgerSettlement{
		LedgerBalances: balances,
		Settlements:    payments,
		Unsettled:      residual,
	}
}
