package ledger

import (
	"math"
	"sort"
)

// Side classifies a balance: "C" means the business owes the client,
// "D" means the client owes the business.
type Side string

const (
	SideCreditor Side = "C"
	SideDebtor   Side = "D"
)

func (s Side) Label() string {
	if s == SideCreditor {
		return "A empresa deve ao cliente"
	}
	return "Cliente deve à empresa"
}

// Balance is the net position of a transaction set, stored as an absolute
// magnitude plus a side. A non-negative raw sum is a creditor balance.
type Balance struct {
	AmountCents int64 `json:"amount_cents"`
	Side        Side  `json:"side"`
}

func sideOf(sum int64) Side {
	if sum >= 0 {
		return SideCreditor
	}
	return SideDebtor
}

// ComputeBalance sums the amounts of txns and classifies the result.
// Returns nil for an empty set: no transactions means no balance.
// The sum is plain integer addition, so input order never matters.
func ComputeBalance(txns []Transaction) *Balance {
	if len(txns) == 0 {
		return nil
	}
	var sum int64
	for _, t := range txns {
		sum += t.AmountCents
	}
	b := &Balance{AmountCents: sum, Side: sideOf(sum)}
	if b.AmountCents < 0 {
		b.AmountCents = -b.AmountCents
	}
	return b
}

// TotalIntakeKg sums quantities over cocoa intake entries. Entries of other
// kinds, or intakes without a quantity, contribute nothing.
func TotalIntakeKg(txns []Transaction) float64 {
	var total float64
	for _, t := range txns {
		if t.Kind == KindCocoaIntake && t.QuantityKg > 0 {
			total += t.QuantityKg
		}
	}
	return total
}

// AveragePriceCents is the simple arithmetic mean of price-per-kg over cocoa
// intakes that have a price, rounded to the nearest centavo. It is NOT
// quantity-weighted: two intakes of 1 kg at R$10 and 1000 kg at R$20 average
// to R$15. Returns 0 when no intake has a price.
func AveragePriceCents(txns []Transaction) int64 {
	var sum int64
	var n int64
	for _, t := range txns {
		if t.Kind == KindCocoaIntake && t.PricePerKgCents > 0 {
			sum += t.PricePerKgCents
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int64(math.Round(float64(sum) / float64(n)))
}

// LedgerLine is a transaction paired with the running balance up to and
// including it.
type LedgerLine struct {
	Transaction
	RunningCents int64 `json:"running_cents"`
	RunningSide  Side  `json:"running_side"`
}

// WithRunningBalance returns txns in chronological ascending order, each line
// carrying the cumulative amount so far. Accumulation always happens in date
// order; callers wanting newest-first display reverse the result themselves.
// Entries on the same date keep their relative input order.
func WithRunningBalance(txns []Transaction) []LedgerLine {
	ordered := make([]Transaction, len(txns))
	copy(ordered, txns)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date.Before(ordered[j].Date)
	})

	lines := make([]LedgerLine, len(ordered))
	var running int64
	for i, t := range ordered {
		running += t.AmountCents
		lines[i] = LedgerLine{
			Transaction:  t,
			RunningCents: running,
			RunningSide:  sideOf(running),
		}
	}
	return lines
}

// PeriodBalance computes the opening balance (sum of amounts strictly before
// from) and the closing balance (opening plus everything inside [from, to],
// inclusive). A zero from or to leaves that side unbounded; with no from the
// opening is 0.
func PeriodBalance(txns []Transaction, from, to Date) (openingCents, closingCents int64) {
	for _, t := range txns {
		if !from.IsZero() && t.Date.Before(from) {
			openingCents += t.AmountCents
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		closingCents += t.AmountCents
	}
	closingCents += openingCents
	return openingCents, closingCents
}

// FilterPeriod returns the transactions inside [from, to], inclusive, with
// zero bounds left open, sorted ascending by date.
func FilterPeriod(txns []Transaction, from, to Date) []Transaction {
	var out []Transaction
	for _, t := range txns {
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}
