package lexer

// SplitNumber splits a number literal into its numeric part and its suffix.
//
//	10px     → "10", suffix "px"
//	2.5vw    → "2.5", frac, suffix "vw"
//	1e3      → "1e3", exp
//	0xffu8   → "0xff", suffix "u8"
//	62a7ff   → "62", suffix "a7ff"
//
// Underscores are kept in the numeric part; callers strip them before
// conversion.
func SplitNumber(lit string) (num string, frac, exp bool, suffix string) {
	i := 0
	if len(lit) > 2 && lit[0] == '0' {
		var digit func(byte) bool
		switch lit[1] {
		case 'x':
			digit = isHexDigit
		case 'o':
			digit = func(b byte) bool { return b >= '0' && b <= '7' }
		case 'b':
			digit = func(b byte) bool { return b == '0' || b == '1' }
		}
		if digit != nil && digit(lit[2]) {
			i = 2
			for i < len(lit) && (digit(lit[i]) || lit[i] == '_') {
				i++
			}
			return lit[:i], false, false, lit[i:]
		}
	}

	for i < len(lit) && (isDigit(lit[i]) || lit[i] == '_') {
		i++
	}
	if i+1 < len(lit) && lit[i] == '.' && isDigit(lit[i+1]) {
		frac = true
		i++
		for i < len(lit) && (isDigit(lit[i]) || lit[i] == '_') {
			i++
		}
	}
	if i < len(lit) && (lit[i] == 'e' || lit[i] == 'E') {
		j := i + 1
		if j < len(lit) && (lit[j] == '+' || lit[j] == '-') {
			j++
		}
		if j < len(lit) && isDigit(lit[j]) {
			exp = true
			i = j
			for i < len(lit) && (isDigit(lit[i]) || lit[i] == '_') {
				i++
			}
		}
	}
	return lit[:i], frac, exp, lit[i:]
}

// isDigit reports whether b is an ASCII decimal digit (0–9).
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
