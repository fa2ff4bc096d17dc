// Package report renders the individual client report: a plain-text summary
// of the client's period activity, offered as a downloadable file.
package report

import (
	"fmt"
	"strings"

	"github.com/dfarias/cacauledger/internal/ledger"
)

// Data carries everything the individual report shows.
type Data struct {
	Client        ledger.Client        `json:"client"`
	CompanyName   string               `json:"company_name,omitempty"`
	From          ledger.Date          `json:"from,omitempty"`
	To            ledger.Date          `json:"to,omitempty"`
	TotalIntakeKg float64              `json:"total_intake_kg"`
	AvgPriceCents int64                `json:"avg_price_cents"`
	Count         int                  `json:"count"`
	OpeningCents  int64                `json:"opening_cents"`
	OpeningSide   ledger.Side          `json:"opening_side"`
	ClosingCents  int64                `json:"closing_cents"`
	ClosingSide   ledger.Side          `json:"closing_side"`
	Transactions  []ledger.Transaction `json:"transactions"`
}

// Build assembles the report data for one client over [from, to], where zero
// bounds are open. txns must be the client's full history: the opening
// balance needs the transactions before the period.
func Build(c ledger.Client, txns []ledger.Transaction, from, to ledger.Date) *Data {
	period := ledger.FilterPeriod(txns, from, to)
	opening, closing := ledger.PeriodBalance(txns, from, to)

	d := &Data{
		Client:        c,
		From:          from,
		To:            to,
		TotalIntakeKg: ledger.TotalIntakeKg(period),
		AvgPriceCents: ledger.AveragePriceCents(period),
		Count:         len(period),
		OpeningCents:  abs(opening),
		ClosingCents:  abs(closing),
		Transactions:  period,
	}
	d.OpeningSide = side(opening)
	d.ClosingSide = side(closing)
	return d
}

// Render produces the export text. Layout follows the ledger books this
// replaces: header, period, RESUMO block, then one line per transaction.
func (d *Data) Render() string {
	var b strings.Builder

	b.WriteString("RELATÓRIO INDIVIDUAL DE CLIENTE\n")
	b.WriteString("================================\n\n")
	if d.CompanyName != "" {
		fmt.Fprintf(&b, "Empresa: %s\n", d.CompanyName)
	}
	fmt.Fprintf(&b, "Cliente: %s\n", d.Client.FullName)
	fmt.Fprintf(&b, "CPF: %s\n", ledger.FormatCPF(d.Client.CPF))
	fmt.Fprintf(&b, "Telefone: %s\n\n", ledger.FormatPhone(d.Client.Phone))

	fromLabel := "Início"
	if !d.From.IsZero() {
		fromLabel = d.From.BR()
	}
	toLabel := "Hoje"
	if !d.To.IsZero() {
		toLabel = d.To.BR()
	}
	fmt.Fprintf(&b, "Período: %s até %s\n\n", fromLabel, toLabel)

	b.WriteString("RESUMO\n------\n")
	fmt.Fprintf(&b, "Total de Cacau Fornecido: %s kg\n", ledger.FormatKg(d.TotalIntakeKg))
	fmt.Fprintf(&b, "Preço Médio Pago: %s/kg\n", ledger.FormatBRL(d.AvgPriceCents))
	fmt.Fprintf(&b, "Total de Transações: %d\n\n", d.Count)

	fmt.Fprintf(&b, "Saldo Inicial: %s\n", ledger.FormatBalance(d.OpeningCents, d.OpeningSide))
	fmt.Fprintf(&b, "Saldo Final: %s\n\n", ledger.FormatBalance(d.ClosingCents, d.ClosingSide))

	b.WriteString("EXTRATO DE TRANSAÇÕES\n---------------------\n")
	for _, t := range d.Transactions {
		qty := "-"
		if t.QuantityKg > 0 {
			qty = ledger.FormatKg(t.QuantityKg) + " kg"
		}
		fmt.Fprintf(&b, "%s | %s | %s | %s\n", t.Date.BR(), t.Kind.Label(), qty, ledger.FormatBRL(t.AmountCents))
	}

	return b.String()
}

// Filename is the suggested download name:
// relatorio_<client name with spaces collapsed to _>_<YYYY-MM-DD>.txt
func (d *Data) Filename(today ledger.Date) string {
	name := strings.Join(strings.Fields(d.Client.FullName), "_")
	return fmt.Sprintf("relatorio_%s_%s.txt", name, today.String())
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func side(v int64) ledger.Side {
	if v >= 0 {
		return ledger.SideCreditor
	}
	return ledger.SideDebtor
}
