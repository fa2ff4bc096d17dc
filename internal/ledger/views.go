package ledger

import (
	"sort"
	"time"
)

// Statement is the running-account view for one client: header data, current
// balance over the full history, and the (optionally year-filtered) lines in
// newest-first display order.
type Statement struct {
	Client      Client       `json:"client"`
	Balance     *Balance     `json:"balance"`
	Year        int          `json:"year,omitempty"`
	Lines       []LedgerLine `json:"lines"`
	Years       []int        `json:"years"`
	GeneratedAt time.Time    `json:"generated_at"`
}

// BuildStatement assembles a statement from the client's full transaction
// history. year filters the visible lines (0 shows everything); the balance
// is always computed over the whole history. Running balances are accumulated
// in ascending date order and the lines then reversed for display.
func BuildStatement(c Client, txns []Transaction, year int) *Statement {
	st := &Statement{
		Client:      c,
		Balance:     ComputeBalance(txns),
		Year:        year,
		GeneratedAt: time.Now().UTC(),
	}

	seen := map[int]bool{}
	for _, t := range txns {
		seen[t.Date.Year()] = true
	}
	for y := range seen {
		st.Years = append(st.Years, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(st.Years)))

	visible := txns
	if year != 0 {
		visible = nil
		for _, t := range txns {
			if t.Date.Year() == year {
				visible = append(visible, t)
			}
		}
	}

	asc := WithRunningBalance(visible)
	st.Lines = make([]LedgerLine, len(asc))
	for i, l := range asc {
		st.Lines[len(asc)-1-i] = l
	}
	return st
}

// ClientBalance is one client's position on the dashboard.
type ClientBalance struct {
	Client      Client  `json:"client"`
	AmountCents int64   `json:"amount_cents"`
	Side        Side    `json:"side"`
	IntakeKg    float64 `json:"intake_kg"`
}

// Dashboard summarizes every client's position plus stock totals.
type Dashboard struct {
	TotalClients       int             `json:"total_clients"`
	TotalIntakeKg      float64         `json:"total_intake_kg"`
	TotalDebtorCents   int64           `json:"total_debtor_cents"`
	TotalCreditorCents int64           `json:"total_creditor_cents"`
	NetCents           int64           `json:"net_cents"`
	NetSide            Side            `json:"net_side"`
	Debtors            []ClientBalance `json:"debtors"`
	Creditors          []ClientBalance `json:"creditors"`
	TopSuppliers       []ClientBalance `json:"top_suppliers"`
	GeneratedAt        time.Time       `json:"generated_at"`
}

// BuildDashboard computes the cross-client summary. Clients with no
// transactions count as creditors with a zero balance, as in the books:
// nothing owed either way. Debtors and creditors are sorted by balance
// descending; top suppliers by intake descending, capped at five.
func BuildDashboard(clients []Client, txns []Transaction) *Dashboard {
	byClient := map[string][]Transaction{}
	for _, t := range txns {
		byClient[t.ClientID] = append(byClient[t.ClientID], t)
	}

	d := &Dashboard{
		TotalClients:  len(clients),
		TotalIntakeKg: TotalIntakeKg(txns),
		GeneratedAt:   time.Now().UTC(),
	}

	positions := make([]ClientBalance, 0, len(clients))
	for _, c := range clients {
		ct := byClient[c.ID]
		cb := ClientBalance{Client: c, Side: SideCreditor, IntakeKg: TotalIntakeKg(ct)}
		if b := ComputeBalance(ct); b != nil {
			cb.AmountCents = b.AmountCents
			cb.Side = b.Side
		}
		positions = append(positions, cb)
	}

	for _, p := range positions {
		if p.Side == SideDebtor {
			d.Debtors = append(d.Debtors, p)
			d.TotalDebtorCents += p.AmountCents
		} else {
			d.Creditors = append(d.Creditors, p)
			d.TotalCreditorCents += p.AmountCents
		}
	}
	sort.SliceStable(d.Debtors, func(i, j int) bool {
		return d.Debtors[i].AmountCents > d.Debtors[j].AmountCents
	})
	sort.SliceStable(d.Creditors, func(i, j int) bool {
		return d.Creditors[i].AmountCents > d.Creditors[j].AmountCents
	})

	d.NetCents = d.TotalCreditorCents - d.TotalDebtorCents
	d.NetSide = sideOf(d.NetCents)
	if d.NetCents < 0 {
		d.NetCents = -d.NetCents
	}

	top := make([]ClientBalance, len(positions))
	copy(top, positions)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].IntakeKg > top[j].IntakeKg
	})
	if len(top) > 5 {
		top = top[:5]
	}
	d.TopSuppliers = top

	return d
}
