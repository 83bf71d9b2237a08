package calculator

import (
	"math"
	"sort"
)

// OptimizeSettlements returns the transfers that bring every balance to zero.
//
// Positive balances are creditors, negative ones are debtors; anything within
// epsilon is already settled. Each step pairs the largest creditor with the
// largest debtor and moves min(credit, debt) between them, so n unsettled
// parties produce at most n-1 payments.
//
// If the balances do not sum to zero the leftover parties are returned as
// residual instead of being settled. The input slice is not modified.
func OptimizeSettlements(balances []Balance, epsilon float64) ([]Payment, []Balance) {
	working := make([]Balance, len(balances))
	copy(working, balances)

	payments := optimize(working, epsilon, false)

	var residual []Balance
	for _, b := range working {
		if !isSettled(b.Amount, epsilon) {
			residual = append(residual, b)
		}
	}
	return payments, residual
}

// optimize runs the greedy matching in place on working. With lastDebtorFirst
// set, the later of two equal debtors pays first; otherwise the earlier one.
func optimize(working []Balance, epsilon float64, lastDebtorFirst bool) []Payment {
	var payments []Payment
	for {
		creditors, debtors := partition(working, epsilon, lastDebtorFirst)
		if len(creditors) == 0 || len(debtors) == 0 {
			return payments
		}

		creditor := &working[creditors[0]]
		debtor := &working[debtors[0]]

		amount := math.Min(creditor.Amount, -debtor.Amount)
		payments = append(payments, Payment{
			From:   debtor.Name,
			To:     creditor.Name,
			Amount: amount,
		})

		// One of the two lands on exactly zero, which guarantees progress.
		creditor.Amount -= amount
		debtor.Amount += amount
	}
}

// partition returns indexes of creditors sorted by descending balance and
// debtors sorted by ascending balance. Creditor ties keep input order; debtor
// ties keep it unless lastDebtorFirst reverses them.
func partition(working []Balance, epsilon float64, lastDebtorFirst bool) (creditors, debtors []int) {
	for i, b := range working {
		if math.IsNaN(b.Amount) || math.IsInf(b.Amount, 0) {
			continue
		}
		switch {
		case b.Amount > epsilon:
			creditors = append(creditors, i)
		case b.Amount < -epsilon:
			debtors = append(debtors, i)
		}
	}
	sort.SliceStable(creditors, func(a, b int) bool {
		return working[creditors[a]].Amount > working[creditors[b]].Amount
	})
	sort.SliceStable(debtors, func(a, b int) bool {
		da, db := working[debtors[a]].Amount, working[debtors[b]].Amount
		if lastDebtorFirst && da == db {
			return debtors[a] > debtors[b]
		}
		return da < db
	})
	return creditors, debtors
}

// isSettled mirrors the partition bounds: neither creditor nor debtor.
func isSettled(amount, epsilon float64) bool {
	return math.Abs(amount) <= epsilon
}
