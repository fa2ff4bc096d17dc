package ledger

import (
	"encoding/json"
	"testing"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	if err != nil {
		t.Fatal(err)
	}
	if d.String() != "2025-01-10" {
		t.Errorf("String() = %q", d.String())
	}
	if d.BR() != "10/01/2025" {
		t.Errorf("BR() = %q", d.BR())
	}
	if d.Year() != 2025 {
		t.Errorf("Year() = %d", d.Year())
	}

	if _, err := ParseDate("10/01/2025"); err == nil {
		t.Error("expected error for non-ISO input")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestDateZero(t *testing.T) {
	var d Date
	if !d.IsZero() {
		t.Error("zero Date should report IsZero")
	}
	if d.String() != "" {
		t.Errorf("zero String() = %q, want empty", d.String())
	}
	if d.BR() != "" {
		t.Errorf("zero BR() = %q, want empty", d.BR())
	}
}

func TestDateOrdering(t *testing.T) {
	a := date("2025-01-10")
	b := date("2025-02-15")
	if !a.Before(b) || b.Before(a) {
		t.Error("Before misordered")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After misordered")
	}
	if !a.Equal(date("2025-01-10")) {
		t.Error("Equal failed for same day")
	}
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		D Date `json:"d"`
	}

	out, err := json.Marshal(wrapper{D: date("2025-03-20")})
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"d":"2025-03-20"}` {
		t.Errorf("marshal = %s", out)
	}

	var in wrapper
	if err := json.Unmarshal([]byte(`{"d":"2025-03-20"}`), &in); err != nil {
		t.Fatal(err)
	}
	if !in.D.Equal(date("2025-03-20")) {
		t.Errorf("unmarshal = %s", in.D)
	}

	var empty wrapper
	if err := json.Unmarshal([]byte(`{"d":""}`), &empty); err != nil {
		t.Fatal(err)
	}
	if !empty.D.IsZero() {
		t.Error("empty string should unmarshal to zero Date")
	}

	var bad wrapper
	if err := json.Unmarshal([]byte(`{"d":"20/03/2025"}`), &bad); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
