package token

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func digits(d []byte, i *int) int {
	start := *i
	for *i < len(d) && (isDigit(d[*i]) || d[*i] == '_') {
		*i++
	}
	return *i - start
}

// number scans a numeric literal at the start of d and returns its length.
// It accepts decimal and radix-prefixed integers, floats with optional
// exponent, underscore digit separators and a trailing imaginary suffix,
// mirroring what the Python tokenizer accepts for literals.
func number(d []byte) (int, error) {
	i := 0
	n := len(d)
	if i < n && (d[i] == '+' || d[i] == '-') {
		i++
	}
	if i < n-1 && d[i] == '0' {
		switch d[i+1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			i += 2
			j := i
			for i < n && (isHexDigit(d[i]) || d[i] == '_') {
				i++
			}
			if i == j {
				return 0, ErrNumber
			}
			return i, nil
		}
	}
	digits(d, &i)
	if i < n && d[i] == '.' {
		i++
		digits(d, &i)
	}
	if i < n && (d[i] == 'e' || d[i] == 'E') {
		j := i + 1
		if j < n && (d[j] == '+' || d[j] == '-') {
			j++
		}
		k := j
		for j < n && (isDigit(d[j]) || d[j] == '_') {
			j++
		}
		if j == k {
			return 0, ErrNumber
		}
		i = j
	}
	if i < n && (d[i] == 'j' || d[i] == 'J') {
		i++
	}
	return i, nil
}
