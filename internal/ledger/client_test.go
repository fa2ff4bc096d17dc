package ledger

import (
	"errors"
	"testing"
)

func TestDigits(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"123.456.789-00", "12345678900"},
		{"(75) 98765-4321", "75987654321"},
		{"abc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Digits(tt.in); got != tt.want {
			t.Errorf("Digits(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestClientNormalize(t *testing.T) {
	c := Client{
		FullName: "  João da Silva Santos  ",
		CPF:      "123.456.789-00",
		Phone:    "(75) 98765-4321",
	}
	c.Normalize()
	if c.FullName != "João da Silva Santos" {
		t.Errorf("FullName = %q", c.FullName)
	}
	if c.CPF != "12345678900" {
		t.Errorf("CPF = %q", c.CPF)
	}
	if c.Phone != "75987654321" {
		t.Errorf("Phone = %q", c.Phone)
	}
}

func TestClientValidate(t *testing.T) {
	valid := func() Client {
		return Client{FullName: "Maria Oliveira Costa", CPF: "98765432100", Phone: "7599876543"}
	}

	tests := []struct {
		name    string
		mutate  func(*Client)
		wantErr error
	}{
		{"valid", func(c *Client) {}, nil},
		{"empty name", func(c *Client) { c.FullName = "" }, ErrEmptyName},
		{"short cpf", func(c *Client) { c.CPF = "1234567890" }, ErrInvalidCPF},
		{"long cpf", func(c *Client) { c.CPF = "123456789001" }, ErrInvalidCPF},
		{"short phone", func(c *Client) { c.Phone = "759876543" }, ErrInvalidPhone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAfterNormalize(t *testing.T) {
	c := Client{
		FullName: "Pedro Almeida Rocha",
		CPF:      "456.789.123-00",
		Phone:    "(75) 98888-7777",
	}
	c.Normalize()
	if err := c.Validate(); err != nil {
		t.Errorf("punctuated CPF and phone should validate after Normalize: %v", err)
	}
}
