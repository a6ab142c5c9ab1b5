package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Coerce converts an externally sourced value into a non-negative decimal.
// Absent, non-numeric, unparseable or negative values become zero.
func Coerce(v any) decimal.Decimal {
	var d decimal.Decimal

	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		d = n
	case json.Number:
		parsed, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero
		}
		d = decimal.NewFromFloat(n)
	case float32:
		return Coerce(float64(n))
	case int:
		d = decimal.NewFromInt(int64(n))
	case int64:
		d = decimal.NewFromInt(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero
		}
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		d = parsed
	default:
		return decimal.Zero
	}

	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// CoerceCount is Coerce truncated to a whole number.
func CoerceCount(v any) int64 {
	return Coerce(v).IntPart()
}

// CoerceID reads an identifier that may arrive as a number or a string.
func CoerceID(v any) int64 {
	switch n := v.(type) {
	case json.Number:
		id, err := n.Int64()
		if err != nil {
			return 0
		}
		return id
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0
		}
		return id
	default:
		return 0
	}
}

// CoerceString returns v when it is a string, its textual form when it is a
// number and "" otherwise.
func CoerceString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return ""
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CoerceTime parses a timestamp in any of the layouts the ledger is known to
// emit. Unparseable values yield the zero time.
func CoerceTime(v any) time.Time {
	s, ok := v.(string)
	if !ok {
		return time.Time{}
	}
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
