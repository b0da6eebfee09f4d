package service

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateTotal(t *testing.T) {
	lines := []PriceLine{
		{UnitPrice: decimal.RequireFromString("10.00"), Quantity: 2},
		{UnitPrice: decimal.RequireFromString("5.50"), Quantity: 1},
	}
	total := CalculateTotal(lines)
	if total.String() != "25.50" {
		t.Fatalf("total want 25.50 got %s", total)
	}
	for i := 0; i < 100; i++ {
		if again := CalculateTotal(lines); !again.Equal(total.Decimal) {
			t.Fatalf("repeated call drifted: %s vs %s", again, total)
		}
	}
}

func TestCalculateTotalNoFloatDrift(t *testing.T) {
	lines := make([]PriceLine, 0, 10)
	for i := 0; i < 10; i++ {
		lines = append(lines, PriceLine{UnitPrice: decimal.RequireFromString("0.10"), Quantity: 1})
	}
	if got := CalculateTotal(lines); got.String() != "1.00" {
		t.Fatalf("ten dimes want 1.00 got %s", got)
	}
}

func TestCalculateTotalEmpty(t *testing.T) {
	if got := CalculateTotal(nil); !got.IsZero() {
		t.Fatalf("empty total should be zero, got %s", got)
	}
}

func TestLineTotal(t *testing.T) {
	got := LineTotal(decimal.RequireFromString("3.33"), 3)
	if !got.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("line total want 9.99 got %s", got)
	}
}
