package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind is the transaction type. Wire values are kept in Portuguese, matching
// the books this system replaces.
type Kind string

const (
	KindCocoaIntake Kind = "entrada_cacau"
	KindProductSale Kind = "venda_produto"
	KindAdvance     Kind = "adiantamento"
	KindPayment     Kind = "pagamento"
)

var AllKinds = []Kind{KindCocoaIntake, KindProductSale, KindAdvance, KindPayment}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindCocoaIntake, KindProductSale, KindAdvance, KindPayment:
		return true
	}
	return false
}

// Label returns the human-readable Portuguese label for k.
func (k Kind) Label() string {
	switch k {
	case KindCocoaIntake:
		return "Entrada de Cacau"
	case KindProductSale:
		return "Venda de Produto"
	case KindAdvance:
		return "Adiantamento/Empréstimo"
	case KindPayment:
		return "Pagamento de Saldo"
	default:
		return string(k)
	}
}

// Transaction is a single ledger movement on a client's running account.
// Amounts are int64 centavos. Positive amounts are credits to the client
// (the business owes more), negative amounts are debits.
//
// Transactions are append-only: there is no update or single delete. They are
// removed only when their owning client is deleted.
type Transaction struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	Date            Date      `json:"date"`
	Kind            Kind      `json:"kind"`
	QuantityKg      float64   `json:"quantity_kg,omitempty"`
	PricePerKgCents int64     `json:"price_per_kg_cents,omitempty"`
	AmountCents     int64     `json:"amount_cents"`
	Note            string    `json:"note,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// IntakeTotalCents computes quantityKg × pricePerKgCents rounded to the
// nearest centavo. 150 kg at 1250 centavos/kg is exactly 187500.
func IntakeTotalCents(quantityKg float64, pricePerKgCents int64) int64 {
	return decimal.NewFromFloat(quantityKg).
		Mul(decimal.New(pricePerKgCents, 0)).
		Round(0).
		IntPart()
}

// Normalize applies the per-kind amount rules before validation:
// cocoa intakes always carry the computed quantity × price total, and
// advances and payments are stored as negative magnitudes regardless of the
// sign the caller supplied. Product sales keep the amount as entered.
func (t *Transaction) Normalize() {
	switch t.Kind {
	case KindCocoaIntake:
		t.AmountCents = IntakeTotalCents(t.QuantityKg, t.PricePerKgCents)
	case KindAdvance, KindPayment:
		if t.AmountCents > 0 {
			t.AmountCents = -t.AmountCents
		}
	case KindProductSale:
		// amount stays as entered
	}
}

// Validate checks entry invariants. Call Normalize first.
func (t *Transaction) Validate() error {
	if t.ClientID == "" {
		return ErrMissingClientID
	}
	if t.Date.IsZero() {
		return ErrMissingDate
	}
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if t.Kind == KindCocoaIntake {
		if t.QuantityKg <= 0 {
			return ErrInvalidQuantity
		}
		if t.PricePerKgCents <= 0 {
			return ErrInvalidPrice
		}
	}
	if t.AmountCents == 0 {
		return ErrZeroAmount
	}
	return nil
}
