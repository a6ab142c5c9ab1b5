package validation

import (
	"errors"
	"testing"

	"github.com/hance08/teller/internal/model"
	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"500", "500", true},
		{" 12.50 ", "12.5", true},
		{"0.01", "0.01", true},
		{"", "", false},
		{"   ", "", false},
		{"0", "", false},
		{"0.00", "", false},
		{"-5", "", false},
		{"abc", "", false},
		{"1,000", "", false},
	}

	for _, tc := range cases {
		got, err := ParseAmount(tc.in)
		if tc.ok {
			if err != nil || !got.Equal(decimal.RequireFromString(tc.want)) {
				t.Fatalf("%q expected %s, got %s (err=%v)", tc.in, tc.want, got, err)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("%q expected ErrInvalidAmount, got %v", tc.in, err)
		}
	}
}

func TestParseInitialBalance(t *testing.T) {
	if b, err := ParseInitialBalance(""); err != nil || !b.IsZero() {
		t.Fatalf("empty balance = %s, %v", b, err)
	}
	if b, err := ParseInitialBalance("250"); err != nil || !b.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("250 = %s, %v", b, err)
	}
	if _, err := ParseInitialBalance("-1"); !errors.Is(err, ErrNegativeBalance) {
		t.Fatalf("expected ErrNegativeBalance, got %v", err)
	}
	if _, err := ParseInitialBalance("x"); !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
}

func TestNormalizeAccountType(t *testing.T) {
	cases := map[string]string{
		"":          "savings",
		"Savings":   "savings",
		" checking": "checking",
	}
	for in, want := range cases {
		got, err := NormalizeAccountType(in)
		if err != nil || got != want {
			t.Errorf("NormalizeAccountType(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := NormalizeAccountType("credit"); !errors.Is(err, ErrInvalidAccountType) {
		t.Errorf("expected ErrInvalidAccountType, got %v", err)
	}
}

func TestParseID(t *testing.T) {
	if id, err := ParseID("7"); err != nil || id != 7 {
		t.Fatalf("ParseID(7) = %d, %v", id, err)
	}
	for _, in := range []string{"", "0", "-3", "seven"} {
		if _, err := ParseID(in); !errors.Is(err, ErrInvalidID) {
			t.Errorf("ParseID(%q) expected ErrInvalidID, got %v", in, err)
		}
	}
}

func TestValidateCustomer(t *testing.T) {
	valid := model.CustomerInput{
		FirstName:  "Chikondi",
		LastName:   "Banda",
		NationalID: "MW-123",
		Phone:      "0999000111",
	}
	if err := ValidateCustomer(valid); err != nil {
		t.Fatalf("valid customer rejected: %v", err)
	}

	missing := valid
	missing.Phone = " "
	if err := ValidateCustomer(missing); !errors.Is(err, ErrMissingRequiredFields) {
		t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
	}

	badEmail := valid
	badEmail.Email = "nope"
	if err := ValidateCustomer(badEmail); err == nil {
		t.Fatal("expected email error")
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := map[string]string{
		"5/3/1990":   "1990-03-05",
		"15/11/1985": "1985-11-15",
		"1990-03-05": "1990-03-05",
		"":           "",
		"1/2":        "1/2",
	}
	for in, want := range cases {
		if got := NormalizeDate(in); got != want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", in, got, want)
		}
	}
}
