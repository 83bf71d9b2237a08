package calculator

import "math"

// Option configures the quick split pipeline.
type Option func(*options)

type options struct {
	directTolerance float64
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithDirectMatchTolerance lets the direct matcher pair obligations that
// cancel within tol instead of exactly. Zero (the default) means exact.
func WithDirectMatchTolerance(tol float64) Option {
	return func(o *options) {
		o.directTolerance = math.Abs(tol)
	}
}

// MatchDirect pairs people whose obligations cancel each other out.
//
// People are scanned in index order and each unsolved person is paired with
// the first later unsolved person holding the opposite ToPay. Every pair
// becomes a single payment from the one who owes to the one who is owed.
// This is first-found, not the pairing that maximizes matches.
//
// It returns the payments and the people left for the optimizer. The input
// slice is not modified.
func MatchDirect(people []SplitPerson, opts ...Option) ([]Payment, []SplitPerson) {
	cfg := newOptions(opts)

	working := make([]SplitPerson, len(people))
	copy(working, people)

	payments := matchDirect(working, cfg.directTolerance)

	var remaining []SplitPerson
	for _, p := range working {
		if !p.Solved {
			remaining = append(remaining, p)
		}
	}
	return payments, remaining
}

// matchDirect marks matched pairs solved in place and zeroes their ToPay so
// later passes do not count them again.
func matchDirect(people []SplitPerson, tol float64) []Payment {
	var payments []Payment
	for i := range people {
		if people[i].Solved {
			continue
		}
		for j := i + 1; j < len(people); j++ {
			if people[j].Solved {
				continue
			}
			if !cancels(people[i].ToPay, people[j].ToPay, tol) {
				continue
			}

			payer, receiver := &people[i], &people[j]
			if payer.ToPay < receiver.ToPay {
				payer, receiver = receiver, payer
			}
			payments = append(payments, Payment{
				From:   payer.Name,
				To:     receiver.Name,
				Amount: payer.ToPay,
			})

			payer.ToPay, payer.Solved = 0, true
			receiver.ToPay, receiver.Solved = 0, true
			break
		}
	}
	return payments
}

func cancels(a, b, tol float64) bool {
	if tol == 0 {
		return a == -b
	}
	return a*b < 0 && math.Abs(a+b) <= tol
}
