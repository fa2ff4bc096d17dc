package ledger

import "testing"

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{0, "R$ 0,00"},
		{1, "R$ 0,01"},
		{100, "R$ 1,00"},
		{1250, "R$ 12,50"},
		{187500, "R$ 1.875,00"},
		{297500, "R$ 2.975,00"},
		{123456789, "R$ 1.234.567,89"},
		{-50000, "-R$ 500,00"},
		{-187500, "-R$ 1.875,00"},
	}
	for _, tt := range tests {
		if got := FormatBRL(tt.cents); got != tt.want {
			t.Errorf("FormatBRL(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestParseBRL(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.50", 1250, false},
		{"12,50", 1250, false},
		{"R$ 12,50", 1250, false},
		{"1875", 187500, false},
		{"0.5", 50, false},
		{"0.505", 50, false}, // extra digits truncated
		{"-500.00", -50000, false},
		{"+500", 50000, false},
		{"", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseBRL(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBRL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseBRL(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatBRLParseBRLRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 1250, 187500, -50000} {
		parsed, err := ParseBRL(FormatBRL(cents))
		if err != nil {
			t.Fatalf("ParseBRL(FormatBRL(%d)): %v", cents, err)
		}
		if parsed != cents {
			t.Errorf("round trip %d -> %q -> %d", cents, FormatBRL(cents), parsed)
		}
	}
}

func TestFormatCPF(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"12345678900", "123.456.789-00"},
		{"123.456.789-00", "123.456.789-00"},
		{"123", "123"}, // not 11 digits, untouched
	}
	for _, tt := range tests {
		if got := FormatCPF(tt.in); got != tt.want {
			t.Errorf("FormatCPF(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPhone(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"75987654321", "(75) 98765-4321"},
		{"7598765432", "(75) 9876-5432"},
		{"(75) 98765-4321", "(75) 98765-4321"},
		{"123", "123"},
	}
	for _, tt := range tests {
		if got := FormatPhone(tt.in); got != tt.want {
			t.Errorf("FormatPhone(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatKg(t *testing.T) {
	if got := FormatKg(150); got != "150.00" {
		t.Errorf("FormatKg(150) = %q, want 150.00", got)
	}
	if got := FormatKg(220.5); got != "220.50" {
		t.Errorf("FormatKg(220.5) = %q, want 220.50", got)
	}
}

func TestFormatBalance(t *testing.T) {
	if got := FormatBalance(297500, SideCreditor); got != "R$ 2.975,00 C" {
		t.Errorf("FormatBalance = %q", got)
	}
	if got := FormatBalance(70000, SideDebtor); got != "R$ 700,00 D" {
		t.Errorf("FormatBalance = %q", got)
	}
}

func TestFormatSignedBRL(t *testing.T) {
	if got := FormatSignedBRL(187500); got != "+R$ 1.875,00" {
		t.Errorf("FormatSignedBRL(187500) = %q", got)
	}
	if got := FormatSignedBRL(-50000); got != "-R$ 500,00" {
		t.Errorf("FormatSignedBRL(-50000) = %q", got)
	}
}
