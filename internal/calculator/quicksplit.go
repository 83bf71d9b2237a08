package calculator

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/mmynk/moneysplitter/internal/models"
)

var (
	ErrNoPeople    = errors.New("number of people must be at least 1")
	ErrInvalidMode = errors.New("mode must be simple or advanced")
)

// SplitPerson is one quick split participant with their derived obligation.
type SplitPerson struct {
	ID   int
	Name string
	Paid float64
	Cost float64

	// ToPay is positive when this person still has to pay and negative when
	// they are owed money.
	ToPay float64

	// Solved is set once |ToPay| is below QuickSplitEpsilon.
	Solved bool
}

// QuickSplitResult is the full outcome of a quick split.
type QuickSplitResult struct {
	// People are in input order with their remaining ToPay after all
	// payments, pool payouts included.
	People []SplitPerson

	// Payments lists pool payouts first, then direct matches, then the
	// optimized transfers.
	Payments []Payment

	TotalPaid float64
	TotalCost float64

	// Overpayment is TotalPaid - TotalCost. Negative means underpaid.
	Overpayment float64
}

// AveragePay returns the even share of total among n people, rounded to cents.
func AveragePay(total float64, n int) float64 {
	return round2(total / float64(n))
}

// CalculateQuickSplitBalances derives ToPay and Solved for every person.
//
// In simple mode everyone owes AveragePay(total, n); in advanced mode each
// person owes their own Cost. The input is not modified.
func CalculateQuickSplitBalances(split models.QuickSplit) ([]SplitPerson, error) {
	if split.TotalNoOfPeople <= 0 {
		return nil, ErrNoPeople
	}
	if !split.Mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, split.Mode)
	}

	average := AveragePay(split.TotalAmount, split.TotalNoOfPeople)

	people := make([]SplitPerson, len(split.People))
	for i, e := range split.People {
		p := SplitPerson{ID: e.ID, Name: e.Name, Paid: e.Paid, Cost: e.Cost}
		if split.Mode == models.ModeAdvanced {
			p.ToPay = e.Cost - e.Paid
		} else {
			p.ToPay = average - e.Paid
		}
		p.Solved = math.Abs(p.ToPay) < QuickSplitEpsilon
		people[i] = p
	}
	return people, nil
}

// SettleQuickSplit runs the full quick split pipeline: balances, direct
// matches, greedy optimization and finally the overpayment pool.
func SettleQuickSplit(split models.QuickSplit, opts ...Option) (QuickSplitResult, error) {
	cfg := newOptions(opts)

	people, err := CalculateQuickSplitBalances(split)
	if err != nil {
		return QuickSplitResult{}, err
	}

	direct := matchDirect(people, cfg.directTolerance)

	// Receivers are paid from the pool in the order of their obligation at
	// this point, most owed first.
	order := make([]int, 0, len(people))
	for i := range people {
		if !people[i].Solved {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return people[order[a]].ToPay < people[order[b]].ToPay
	})

	// The optimizer works in ledger convention: owed money is positive. Among
	// payers who owe the same amount the later one in this order pays first.
	working := make([]Balance, len(order))
	for k, i := range order {
		working[k] = Balance{ID: strconv.Itoa(i), Name: people[i].Name, Amount: -people[i].ToPay}
	}
	optimized := optimize(working, QuickSplitEpsilon, true)
	for k, i := range order {
		people[i].ToPay = -working[k].Amount
	}

	result := QuickSplitResult{People: people}
	for _, p := range people {
		result.TotalPaid += p.Paid
		if split.Mode == models.ModeAdvanced {
			result.TotalCost += p.Cost
		}
	}
	if split.Mode != models.ModeAdvanced {
		result.TotalCost = split.TotalAmount
	}
	result.Overpayment = result.TotalPaid - result.TotalCost

	payments := make([]Payment, 0, len(direct)+len(optimized))
	payments = append(payments, direct...)
	payments = append(payments, optimized...)

	if result.Overpayment > QuickSplitEpsilon {
		receivers := make([]SplitPerson, 0, len(order))
		for _, i := range order {
			receivers = append(receivers, people[i])
		}
		payments = DistributeOverpayment(payments, receivers, result.Overpayment)
		for _, i := range order {
			if people[i].ToPay >= -QuickSplitEpsilon {
				continue
			}
			if amount := math.Min(-people[i].ToPay, result.Overpayment); amount > QuickSplitEpsilon {
				people[i].ToPay += amount
			}
		}
	}

	for i := range people {
		people[i].Solved = math.Abs(people[i].ToPay) < QuickSplitEpsilon
	}
	result.Payments = payments
	return result, nil
}

// round2 rounds the exact binary value of v half away from zero to two
// decimal places.
func round2(v float64) float64 {
	return decimal.NewFromFloatWithExponent(v, -2).InexactFloat64()
}
