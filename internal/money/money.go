// Package money formats Korean won amounts for display. All functions are
// pure and total: non-positive or otherwise unusable input yields the
// Placeholder string rather than an error.
package money

import "strings"

// Placeholder is rendered wherever an amount is missing or non-positive.
const Placeholder = "-"

const (
	eok = 100_000_000
	man = 10_000
)

// DigitsOnly strips every non-digit rune, coercing free-form numeric input
// into something parseable. "12,a3b4" becomes "1234".
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatWithComma renders n with thousands separators: 1234567 -> "1,234,567".
func FormatWithComma(n int64) string {
	if n <= 0 {
		return Placeholder
	}
	return groupDigits(n)
}

func groupDigits(n int64) string {
	digits := []byte{}
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
		if i > 0 && i%3 == 0 {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// WonToKoreanText renders a won amount in 억/만원 units, the form shown next
// to money inputs: 150000000 -> "1억 5,000만원", 50000 -> "5만원".
// Only 억 and 만 units are handled.
func WonToKoreanText(won int64) string {
	if won <= 0 {
		return Placeholder
	}
	e := won / eok
	rem := won % eok
	m := rem / man

	switch {
	case e > 0 && m > 0:
		return groupDigits(e) + "억 " + groupDigits(m) + "만원"
	case e > 0:
		return groupDigits(e) + "억원"
	default:
		return groupDigits(won/man) + "만원"
	}
}

// WonSummary renders a short report-style amount: 200000000 -> "2억",
// 250000000 -> "2.5억", 55000000 -> "5,500만원". Amounts of 1억 or more keep
// one decimal place of 억; smaller amounts round to 만원.
func WonSummary(won int64) string {
	if won <= 0 {
		return Placeholder
	}
	if won >= eok {
		// tenths of an 억, rounded
		tenths := (won*10 + eok/2) / eok
		whole := tenths / 10
		frac := tenths % 10
		if frac == 0 {
			return groupDigits(whole) + "억"
		}
		return groupDigits(whole) + "." + string(byte('0'+frac)) + "억"
	}
	m := (won + man/2) / man
	if m <= 0 {
		return Placeholder
	}
	return groupDigits(m) + "만원"
}
