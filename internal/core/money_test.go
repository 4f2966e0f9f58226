package core

import (
	"encoding/json"
	"testing"
)

func TestParseAmountToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"0", 0, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"250.50", 25050, true},
		{"1000", 100000, true},
		{"-1", 0, false},
		{"+1", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
		{"   ", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseAmountToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestMoneyMarshalJSON(t *testing.T) {
	b, err := json.Marshal(Money{Cents: 25050})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != "250.5" {
		t.Fatalf("expected 250.5, got %s", b)
	}
}

func TestMoneyUnmarshalJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  int64
	}{
		{"number", "250.5", 25050},
		{"integer", "1000", 100000},
		{"numeric string", `"12.34"`, 1234},
		{"negative coerces to zero", "-5", 0},
		{"non-numeric string coerces to zero", `"abc"`, 0},
		{"null coerces to zero", "null", 0},
		{"object coerces to zero", `{"cents":100}`, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var m Money
			if err := json.Unmarshal([]byte(tc.in), &m); err != nil {
				t.Fatalf("unmarshal must never fail, got %v", err)
			}
			if m.Cents != tc.out {
				t.Fatalf("expected %d cents, got %d", tc.out, m.Cents)
			}
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := Money{Cents: 100000}
	b := Money{Cents: 25050}

	if got := a.Add(b).Cents; got != 125050 {
		t.Fatalf("add: expected 125050, got %d", got)
	}
	if got := a.Sub(b).Cents; got != 74950 {
		t.Fatalf("sub: expected 74950, got %d", got)
	}
	if got := a.Sub(b).Float(); got != 749.5 {
		t.Fatalf("float: expected 749.5, got %v", got)
	}
}
