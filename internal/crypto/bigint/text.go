package bigint

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/smallyu/go-cryptcore/pkg/cryptcore"
)

// Parse reads text in the given base (2..36) into an Int of the given
// width. A leading '-' negates the result, base 16 accepts a "0x" prefix,
// and spaces, commas and underscores between digits are skipped. Values that
// do not fit wrap modulo 2^(64W).
func Parse(words int, signed bool, text string, base int) (Int, error) {
	if base < 2 || base > 36 {
		return Int{}, errors.Wrapf(cryptcore.ErrInvalidNumeral, "bigint.Parse: base %d", base)
	}
	if words < 1 {
		return Int{}, errors.Wrapf(cryptcore.ErrInvalidNumeral, "bigint.Parse: width of %d words", words)
	}
	s := strings.TrimSpace(text)
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}
	if base == 16 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")) {
		s = s[2:]
	}

	z := New(words, signed)
	digits := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == ',' || c == '_' {
			continue
		}
		d := digitValue(c)
		if d >= base {
			return Int{}, errors.Wrapf(cryptcore.ErrInvalidNumeral, "bigint.Parse: %q in base %d", c, base)
		}
		mulAddWord(z.w, uint64(base), uint64(d))
		digits++
	}
	if digits == 0 {
		return Int{}, errors.Wrapf(cryptcore.ErrInvalidNumeral, "bigint.Parse: no digits in %q", text)
	}
	if neg {
		z = z.Neg()
	}
	return z, nil
}

// MustParse is like Parse but panics on error. It is meant for constants.
func MustParse(words int, signed bool, text string, base int) Int {
	z, err := Parse(words, signed, text, base)
	if err != nil {
		panic(err)
	}
	return z
}

// Text returns x in the given base (2..36) with lowercase digits. Negative
// signed values get a '-' prefix.
func (x Int) Text(base int) (string, error) {
	if base < 2 || base > 36 {
		return "", errors.Wrapf(cryptcore.ErrInvalidNumeral, "bigint.Text: base %d", base)
	}
	mag := x.Abs().w
	if isZeroWords(mag) {
		return "0", nil
	}

	// Peel off the largest power of base that fits in a word at a time.
	chunk, k := uint64(base), 1
	for {
		hi, next := bits.Mul64(chunk, uint64(base))
		if hi != 0 {
			break
		}
		chunk, k = next, k+1
	}

	var parts []string
	cur := make([]uint64, len(mag))
	copy(cur, mag)
	q := make([]uint64, len(mag))
	for !isZeroWords(cur) {
		rem := divWord(q, cur, chunk)
		cur, q = q, cur
		parts = append(parts, strconv.FormatUint(rem, base))
	}

	var sb strings.Builder
	if x.IsNegative() {
		sb.WriteByte('-')
	}
	sb.WriteString(parts[len(parts)-1])
	for i := len(parts) - 2; i >= 0; i-- {
		sb.WriteString(strings.Repeat("0", k-len(parts[i])))
		sb.WriteString(parts[i])
	}
	return sb.String(), nil
}

// String returns x in base 10.
func (x Int) String() string {
	if len(x.w) == 0 {
		return "<nil>"
	}
	s, _ := x.Text(10)
	return s
}

// Hex returns the raw bits of x in base 16. With padded set the output is
// exactly 16W digits; otherwise leading zeros are dropped.
func (x Int) Hex(upper, padded bool) string {
	if len(x.w) == 0 {
		return ""
	}
	verb := "%016x"
	if upper {
		verb = "%016X"
	}
	var sb strings.Builder
	for i := len(x.w) - 1; i >= 0; i-- {
		fmt.Fprintf(&sb, verb, x.w[i])
	}
	s := sb.String()
	if padded {
		return s
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return "0"
	}
	return s
}

// Format implements fmt.Formatter for the %d, %x, %X, %s and %v verbs.
func (x Int) Format(f fmt.State, verb rune) {
	switch verb {
	case 'x':
		fmt.Fprint(f, x.Hex(false, f.Flag('0')))
	case 'X':
		fmt.Fprint(f, x.Hex(true, f.Flag('0')))
	case 'd', 's', 'v':
		fmt.Fprint(f, x.String())
	default:
		fmt.Fprintf(f, "%%!%c(bigint.Int=%s)", verb, x.String())
	}
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10
	}
	return 36
}

// mulAddWord sets z = z*m + a in place, wrapping at len(z) words.
func mulAddWord(z []uint64, m, a uint64) {
	carry := a
	for i := range z {
		hi, lo := mul64(z[i], m)
		var c uint64
		z[i], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}
}
