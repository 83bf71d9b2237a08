package calculator

import "math"

// DistributeOverpayment pays remaining receivers out of the surplus.
//
// Every receiver still owed more than QuickSplitEpsilon gets a payment from
// OverpaymentPool for min(owed, overpayment). Pool payments are placed in
// front of payments, each new one ahead of the previous.
//
// The surplus is not drawn down between receivers: each one is compared
// against the full overpayment. When the peer transfers fully settled the
// payers, the receivers' remaining claims add up to the surplus, so the
// pool is never overdrawn.
//
// Only the receivers' remaining ToPay counts. A receiver settled by
// MatchDirect has ToPay zero and Solved set, so it gets no pool payment even
// if its original claim exceeded the surplus. In the Alice/Bob/Charlie case
// (paid 20/0/20, cost 10 each) the result is Pool->Charlie 10 and Bob->Alice
// 10; Alice is not paid a second time from the pool.
func DistributeOverpayment(payments []Payment, receivers []SplitPerson, overpayment float64) []Payment {
	if overpayment <= QuickSplitEpsilon {
		return payments
	}

	var pool []Payment
	for _, r := range receivers {
		if r.ToPay >= -QuickSplitEpsilon {
			continue
		}
		amount := math.Min(-r.ToPay, overpayment)
		if amount > QuickSplitEpsilon {
			pool = append(pool, Payment{From: OverpaymentPool, To: r.Name, Amount: amount})
		}
	}

	out := make([]Payment, 0, len(pool)+len(payments))
	for i := len(pool) - 1; i >= 0; i-- {
		out = append(out, pool[i])
	}
	return append(out, payments...)
}
