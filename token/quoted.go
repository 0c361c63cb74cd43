package token

// quoted scans a string literal at the start of d, where d[0] is the opening
// quote character. It returns the length of the literal including quotes.
// Backslash escapes are skipped without interpretation; raw-ness only matters
// when the literal is evaluated, not when it is delimited.
func quoted(d []byte) (int, error) {
	q := d[0]
	if len(d) >= 3 && d[1] == q && d[2] == q {
		return tripleQuoted(d, q)
	}
	i := 1
	for i < len(d) {
		switch d[i] {
		case q:
			return i + 1, nil
		case '\\':
			i += 2
		case '\n':
			return 0, ErrUnterminated
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

func tripleQuoted(d []byte, q byte) (int, error) {
	i := 3
	for i < len(d) {
		switch d[i] {
		case q:
			if i+2 < len(d) && d[i+1] == q && d[i+2] == q {
				return i + 3, nil
			}
			i++
		case '\\':
			i += 2
		default:
			i++
		}
	}
	return 0, ErrUnterminated
}

// stringPrefix reports whether name is a valid string literal prefix
// (r, b, u, f and two-letter combinations, any case).
func stringPrefix(name []byte) bool {
	if len(name) == 0 || len(name) > 2 {
		return false
	}
	for _, c := range name {
		switch c {
		case 'r', 'R', 'b', 'B', 'u', 'U', 'f', 'F':
		default:
			return false
		}
	}
	return true
}
