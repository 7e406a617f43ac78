package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	if !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}

	m3, err := NewMoneyFromString("123.45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m3.String() != "123.45" {
		t.Fatalf("NewMoneyFromString display mismatch: got %s", m3.String())
	}

	if _, err := NewMoneyFromString("not-a-number"); err == nil {
		t.Fatalf("expected error for invalid string")
	}
}

func TestArithmetic(t *testing.T) {
	a := NewMoney(100.50)
	b := NewMoney(50.25)

	if got := a.Add(b).String(); got != "150.75" {
		t.Fatalf("Add: got %s", got)
	}
	if got := a.Sub(b).String(); got != "50.25" {
		t.Fatalf("Sub: got %s", got)
	}
	if got := a.Mul(stddec.NewFromInt(2)).String(); got != "201.00" {
		t.Fatalf("Mul: got %s", got)
	}
	if got := a.Div(stddec.NewFromInt(2)).String(); got != "50.25" {
		t.Fatalf("Div: got %s", got)
	}
}

func TestComparisons(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	if !a.LessThan(b) || b.LessThan(a) {
		t.Fatalf("LessThan broken")
	}
	if !b.GreaterThan(a) || a.GreaterThan(b) {
		t.Fatalf("GreaterThan broken")
	}
	if !a.Equal(NewMoney(10)) || a.Equal(b) {
		t.Fatalf("Equal broken")
	}
	if !Zero().IsZero() || a.IsZero() {
		t.Fatalf("IsZero broken")
	}

	if !Min(a, b).Equal(a) || !Max(a, b).Equal(b) {
		t.Fatalf("Min/Max broken")
	}
}

func TestRound(t *testing.T) {
	if got := NewMoney(1.005).Round().String(); got != "1.00" && got != "1.01" {
		t.Fatalf("Round: got %s", got)
	}
	if got := NewMoney(2.344).Round().String(); got != "2.34" {
		t.Fatalf("Round down: got %s", got)
	}
	if got := NewMoney(2.346).Round().String(); got != "2.35" {
		t.Fatalf("Round up: got %s", got)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{999.99, "$999.99"},
		{1000, "$1,000.00"},
		{1234.56, "$1,234.56"},
		{123456.78, "$123,456.78"},
		{1234567.89, "$1,234,567.89"},
		{-1234.56, "-$1,234.56"},
	}
	for _, tt := range tests {
		if got := NewMoney(tt.in).Format(); got != tt.want {
			t.Fatalf("Format(%v): got %s want %s", tt.in, got, tt.want)
		}
	}
}
