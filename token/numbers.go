package token

import "strconv"

// Number is a scanned numeric literal. A literal is a float exactly when
// it contains a decimal point.
type Number struct {
	Lit     string
	IsFloat bool
	Int     int64
	Float   float64
}

// scanNumber scans `-? digit+ ("." digit+)?` at the start of d. It returns
// the end of the literal, or when ok is false the offset of the byte where
// a digit was required.
func scanNumber(d []byte) (end int, isFloat, ok bool) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	digits := asciiDigits(d[i:])
	if digits == 0 {
		return i, false, false
	}
	i += digits
	if i < len(d) && d[i] == '.' {
		i++
		f := asciiDigits(d[i:])
		if f == 0 {
			return i, true, false
		}
		return i + f, true, true
	}
	return i, false, true
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && isDigit(d[i]) {
		i++
	}
	return i
}

func parseNumber(lit string, isFloat bool) (*Number, error) {
	n := &Number{Lit: lit, IsFloat: isFloat}
	var err error
	if isFloat {
		n.Float, err = strconv.ParseFloat(lit, 64)
	} else {
		n.Int, err = strconv.ParseInt(lit, 10, 64)
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}
