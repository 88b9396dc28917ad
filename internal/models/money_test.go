package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyKeepsTwoDecimals(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.RequireFromString("12.345"))
	if m.String() != "12.35" {
		t.Fatalf("want 12.35 got %s", m.String())
	}

	raw, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal money failed: %v", err)
	}
	if string(raw) != `"12.35"` {
		t.Fatalf("money should serialize as fixed string, got %s", raw)
	}

	var parsed Money
	if err := json.Unmarshal([]byte(`9.9`), &parsed); err != nil {
		t.Fatalf("unmarshal numeric money failed: %v", err)
	}
	if parsed.String() != "9.90" {
		t.Fatalf("want 9.90 got %s", parsed.String())
	}
}
