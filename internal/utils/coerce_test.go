package utils

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestCoerce(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "0"},
		{"float", 1500.5, "1500.5"},
		{"int", 7, "7"},
		{"json number", json.Number("250.75"), "250.75"},
		{"numeric string", " 1000.00 ", "1000"},
		{"garbage string", "not-a-number", "0"},
		{"empty string", "", "0"},
		{"negative", -10.0, "0"},
		{"negative string", "-3", "0"},
		{"nan", math.NaN(), "0"},
		{"inf", math.Inf(1), "0"},
		{"bool", true, "0"},
		{"object", map[string]any{"a": 1}, "0"},
		{"array", []any{1, 2}, "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Coerce(tc.in)
			want := decimal.RequireFromString(tc.want)
			if !got.Equal(want) {
				t.Fatalf("Coerce(%v) = %s, want %s", tc.in, got, want)
			}
		})
	}
}

func TestCoerceCount(t *testing.T) {
	if got := CoerceCount("12"); got != 12 {
		t.Fatalf("CoerceCount(\"12\") = %d, want 12", got)
	}
	if got := CoerceCount(json.Number("3.9")); got != 3 {
		t.Fatalf("CoerceCount(3.9) = %d, want 3", got)
	}
	if got := CoerceCount("x"); got != 0 {
		t.Fatalf("CoerceCount(\"x\") = %d, want 0", got)
	}
}

func TestCoerceID(t *testing.T) {
	cases := []struct {
		in   any
		want int64
	}{
		{json.Number("9"), 9},
		{float64(7), 7},
		{"42", 42},
		{"abc", 0},
		{nil, 0},
	}
	for _, tc := range cases {
		if got := CoerceID(tc.in); got != tc.want {
			t.Errorf("CoerceID(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestCoerceTime(t *testing.T) {
	got := CoerceTime("2025-03-01T10:20:30Z")
	if got.IsZero() || got.Hour() != 10 {
		t.Fatalf("unexpected time %v", got)
	}
	if !CoerceTime("yesterday").IsZero() {
		t.Fatal("expected zero time for unparseable input")
	}
	if !CoerceTime(12).IsZero() {
		t.Fatal("expected zero time for non-string input")
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"1500":        "1,500.00",
		"0":           "0.00",
		"1234567.891": "1,234,567.89",
	}
	for in, want := range cases {
		if got := FormatAmount(decimal.RequireFromString(in)); got != want {
			t.Errorf("FormatAmount(%s) = %q, want %q", in, got, want)
		}
	}
	if got := FormatMoney(decimal.NewFromInt(5), "MWK"); got != "MWK 5.00" {
		t.Errorf("FormatMoney = %q", got)
	}
}
