package ternary

// Format renders v as a minimal base-3 numeral with a leading '-' when v is
// negative.
func Format(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	// uint64 keeps math.MinInt64 representable after negation.
	u := uint64(v)
	if neg {
		u = -u
	}

	var buf []byte
	for u > 0 {
		buf = append(buf, byte('0'+u%3))
		u /= 3
	}
	if neg {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

// Calc evaluates one line and returns the result rendered in base 3.
func Calc(line string) (string, error) {
	v, err := Eval(line)
	if err != nil {
		return "", err
	}
	return Format(v), nil
}
