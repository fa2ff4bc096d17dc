package ledger

import (
	"strings"
	"time"
)

// Client is a cocoa supplier with a running account of debits and credits.
// CPF and phone are stored as bare digits; display formatting is applied by
// FormatCPF and FormatPhone.
type Client struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	CPF          string    `json:"cpf"`
	Phone        string    `json:"phone"`
	RegisteredAt Date      `json:"registered_at"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
}

// Digits strips everything but 0-9 from s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Normalize trims the name and reduces CPF and phone to bare digits.
func (c *Client) Normalize() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.CPF = Digits(c.CPF)
	c.Phone = Digits(c.Phone)
}

// Validate checks registration invariants: non-empty name, 11-digit CPF,
// at least 10-digit phone. Call Normalize first.
func (c *Client) Validate() error {
	if c.FullName == "" {
		return ErrEmptyName
	}
	if len(c.CPF) != 11 {
		return ErrInvalidCPF
	}
	if len(c.Phone) < 10 {
		return ErrInvalidPhone
	}
	return nil
}
