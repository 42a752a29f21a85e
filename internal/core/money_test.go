package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"250.5", 25050, true},
		{"0.01", 1, true},
		{"12.345", 1235, true}, // half away from zero
		{"-12.345", -1235, true},
		{" 2.50 ", 250, true},
		{"0", 0, true},
		{"1e3", 100000, true},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"1,23", 0, false},
		{"", 0, false},
		{"99999999999999999999", 0, false},
		{"1e50000000", 0, false},
		{"1e-5000000", 0, false},
		{"-1e5000000", 0, false},
		{"0.000000000000000000000000000001", 0, true},
		{"1e17", 0, false},
		{"1e16", 1000000000000000000, true},
	}
	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || got.Cents != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got.Cents, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestMoneyFormatting(t *testing.T) {
	cases := []struct {
		cents   int64
		str     string
		compact string
	}{
		{25050, "250.50", "250.5"},
		{100000, "1000.00", "1000.0"},
		{5, "0.05", "0.05"},
		{0, "0.00", "0.0"},
		{-300, "-3.00", "-3.0"},
	}
	for _, tc := range cases {
		m := Money{Cents: tc.cents}
		if got := m.String(); got != tc.str {
			t.Fatalf("String(%d) = %q, want %q", tc.cents, got, tc.str)
		}
		if got := m.Compact(); got != tc.compact {
			t.Fatalf("Compact(%d) = %q, want %q", tc.cents, got, tc.compact)
		}
	}
}

func TestMoneyAdd(t *testing.T) {
	total := Money{}
	for _, c := range []int64{1000, 2050, 525} {
		total = total.Add(Money{Cents: c})
	}
	if total.String() != "35.75" {
		t.Fatalf("expected 35.75, got %s", total)
	}
}
