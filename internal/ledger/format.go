package ledger

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatBRL renders centavos in the pt-BR money style: R$ 1.875,00.
// Negative amounts get a leading minus: -R$ 500,00.
func FormatBRL(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	whole := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(whole, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}

// ParseBRL converts a decimal amount string like "12.50" or "12,50" into
// centavos. Extra fractional digits are truncated.
func ParseBRL(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	amount = strings.TrimPrefix(amount, "R$")
	amount = strings.TrimSpace(amount)
	amount = strings.ReplaceAll(amount, ",", ".")

	negative := false
	if strings.HasPrefix(amount, "-") {
		negative = true
		amount = amount[1:]
	} else if strings.HasPrefix(amount, "+") {
		amount = amount[1:]
	}

	parts := strings.SplitN(amount, ".", 2)
	whole, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	result := whole * 100

	if len(parts) == 2 && parts[1] != "" {
		frac := parts[1]
		for len(frac) < 2 {
			frac += "0"
		}
		frac = frac[:2]
		f, err := strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid fractional amount %q: %w", amount, err)
		}
		result += f
	}

	if negative {
		result = -result
	}
	return result, nil
}

// FormatCPF renders an 11-digit CPF as 123.456.789-00. Inputs that do not
// normalize to 11 digits are returned untouched.
func FormatCPF(cpf string) string {
	n := Digits(cpf)
	if len(n) != 11 {
		return cpf
	}
	return n[0:3] + "." + n[3:6] + "." + n[6:9] + "-" + n[9:11]
}

// FormatPhone renders a Brazilian phone as (75) 98765-4321 for 11 digits or
// (75) 9876-5432 for 10. Anything else is returned untouched.
func FormatPhone(phone string) string {
	n := Digits(phone)
	switch len(n) {
	case 11:
		return "(" + n[0:2] + ") " + n[2:7] + "-" + n[7:11]
	case 10:
		return "(" + n[0:2] + ") " + n[2:6] + "-" + n[6:10]
	default:
		return phone
	}
}

// FormatKg renders a kilogram quantity with two decimals, e.g. "150.00".
func FormatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 2, 64)
}

// FormatBalance renders an absolute amount with its side letter: R$ 500,00 D.
func FormatBalance(cents int64, side Side) string {
	return FormatBRL(cents) + " " + string(side)
}

// FormatSignedBRL renders an amount with an explicit +/- prefix, the way the
// statement value column shows movements.
func FormatSignedBRL(cents int64) string {
	if cents >= 0 {
		return "+" + FormatBRL(cents)
	}
	return FormatBRL(cents)
}
