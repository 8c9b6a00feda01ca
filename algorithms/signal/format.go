package signal

import (
	"strconv"
	"strings"
)

// FormatReal renders x as fixed-precision decimals separated by spaces.
func FormatReal(x []float64, precision int) string {
	precision = max(precision, 0)

	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.FormatFloat(v, 'f', precision, 64)
	}
	return strings.Join(parts, " ")
}

// FormatComplex renders each element as "a+bi" or "a-bi" with fixed
// precision, separated by spaces.
func FormatComplex(x []complex128, precision int) string {
	precision = max(precision, 0)

	parts := make([]string, len(x))
	for i, v := range x {
		var b strings.Builder
		b.WriteString(strconv.FormatFloat(real(v), 'f', precision, 64))

		im := strconv.FormatFloat(imag(v), 'f', precision, 64)
		if !strings.HasPrefix(im, "-") {
			b.WriteByte('+')
		}
		b.WriteString(im)
		b.WriteByte('i')
		parts[i] = b.String()
	}
	return strings.Join(parts, " ")
}
