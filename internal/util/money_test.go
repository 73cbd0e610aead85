package util

import (
	"testing"

	"github.com/shopspring/decimal"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("解析 decimal 失败: %v", err)
	}
	return d
}

// TestAmountToCent_Valid 测试正常金额
func TestAmountToCent_Valid(t *testing.T) {
	cases := map[string]int64{
		"0.01":       1,
		"1":          100,
		"12.34":      1234,
		"100.5":      10050,
		"9999999.99": 999999999,
	}

	for s, want := range cases {
		got, err := AmountToCent(mustDecimal(t, s))
		if err != nil {
			t.Errorf("AmountToCent(%s) error = %v, want nil", s, err)
			continue
		}
		if got != want {
			t.Errorf("AmountToCent(%s) = %d, want %d", s, got, want)
		}
	}
}

// TestAmountToCent_Invalid 测试非法金额（零、负数、超限、三位小数）
func TestAmountToCent_Invalid(t *testing.T) {
	cases := []string{
		"0",
		"-0.01",
		"-100",
		"10000000",
		"100000000",
		"1.234",
	}

	for _, s := range cases {
		if _, err := AmountToCent(mustDecimal(t, s)); err == nil {
			t.Errorf("AmountToCent(%s) error = nil, want error", s)
		}
	}
}

// TestNonNegativeToCent 已存金额允许 0
func TestNonNegativeToCent(t *testing.T) {
	got, err := NonNegativeToCent(decimal.Zero)
	if err != nil || got != 0 {
		t.Errorf("NonNegativeToCent(0) = %d, %v, want 0, nil", got, err)
	}

	if _, err := NonNegativeToCent(mustDecimal(t, "-1")); err == nil {
		t.Error("NonNegativeToCent(-1) error = nil, want error")
	}

	got, err = NonNegativeToCent(mustDecimal(t, "3.50"))
	if err != nil || got != 350 {
		t.Errorf("NonNegativeToCent(3.50) = %d, %v, want 350, nil", got, err)
	}
}

func TestFormatCent(t *testing.T) {
	cases := map[int64]string{
		0:         "0.00",
		1:         "0.01",
		1234:      "12.34",
		10050:     "100.50",
		999999999: "9999999.99",
		-1234:     "-12.34",
	}

	for cent, want := range cases {
		if got := FormatCent(cent); got != want {
			t.Errorf("FormatCent(%d) = %s, want %s", cent, got, want)
		}
	}
}
