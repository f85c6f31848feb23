package pagelabel

import (
	"strconv"
	"strings"
)

// Format renders the display label for numeric value n under a style,
// with the range's prefix prepended. StyleNone yields the bare prefix.
// Non-positive n has no representation in roman or letter numbering and
// renders as decimal, which is what viewers fall back to as well.
func Format(style Style, prefix string, n int) string {
	var body string
	switch style {
	case StyleDecimal:
		body = strconv.Itoa(n)
	case StyleRomanUpper:
		body = toRoman(n)
	case StyleRomanLower:
		body = strings.ToLower(toRoman(n))
	case StyleLetterUpper:
		body = toLetters(n)
	case StyleLetterLower:
		body = strings.ToLower(toLetters(n))
	}
	return prefix + body
}

var romanValues = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// toRoman converts n to uppercase roman numerals using subtractive
// notation. Values outside 1..3999 render as decimal.
func toRoman(n int) string {
	if n < 1 || n > 3999 {
		return strconv.Itoa(n)
	}
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}

// toLetters converts n to the A..Z, AA..ZZ, AAA.. scheme used by PDF
// letter-style page labels: the letter cycles every 26 and its
// repetition count grows by one each cycle.
func toLetters(n int) string {
	if n < 1 {
		return strconv.Itoa(n)
	}
	letter := byte('A' + (n-1)%26)
	count := (n-1)/26 + 1
	return strings.Repeat(string(letter), count)
}
