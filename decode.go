package hexfmt

import "fmt"

// ParseBytes parses all of s.
func (f HexFormat) ParseBytes(s string) ([]byte, error) {
	return f.ParseBytesRange(s, 0, len(s))
}

// MustParseBytes is like ParseBytes but panics on error. Intended for
// fixtures and package-level variables.
func (f HexFormat) MustParseBytes(s string) []byte {
	b, err := f.ParseBytes(s)
	if err != nil {
		panic(err)
	}
	return b
}

// ParseBytesRange parses s[start:end] into a byte slice. Hex digits and
// configured literals match ignoring ASCII case; "\r\n", "\n" and "\r" are
// all accepted where a line break is expected. An empty range yields an
// empty slice.
func (f HexFormat) ParseBytesRange(s string, start, end int) ([]byte, error) {
	if err := checkRange(start, end, len(s)); err != nil {
		return nil, err
	}
	if start == end {
		return []byte{}, nil
	}

	dst := make([]byte, f.parsedMaxLen(end-start))
	var n int
	var ok bool
	var err error
	if f.bytes.plain() {
		n, ok, err = f.parseFlat(s, start, end, dst)
	}
	if !ok {
		n, err = f.parseGrouped(s, start, end, dst)
	}
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// parseFlat attempts the no-wrap, no-group shortcut: the byte count is fully
// determined by the input length. When the length does not divide evenly the
// general path takes over and produces the precise error.
func (f HexFormat) parseFlat(s string, start, end int, dst []byte) (n int, ok bool, err error) {
	bp := f.bytes.bytePrefix
	bx := f.bytes.byteSuffix
	bs := f.bytes.byteSeparator

	L := end - start
	k := 2 + len(bp) + len(bx) + len(bs)
	count := (L + len(bs)) / k
	if count*k-len(bs) != L {
		return 0, false, nil
	}

	i := start
	switch {
	case bp == "" && bx == "" && bs == "":
		for bi := 0; bi < count; bi++ {
			b, derr := digitPair(s, i, end)
			if derr != nil {
				return 0, true, derr
			}
			dst[bi] = b
			i += 2
		}
		return count, true, nil

	case bp == "" && bx == "" && len(bs) == 1:
		b, derr := digitPair(s, i, end)
		if derr != nil {
			return 0, true, derr
		}
		dst[0] = b
		i += 2
		for bi := 1; bi < count; bi++ {
			if i, err = consumeFold(s, i, end, bs, "byte separator"); err != nil {
				return 0, true, err
			}
			if b, err = digitPair(s, i, end); err != nil {
				return 0, true, err
			}
			dst[bi] = b
			i += 2
		}
		return count, true, nil

	default:
		// The literals between two bytes always form the same composite:
		// suffix, separator, then the next byte's prefix.
		mid := bx + bs + bp
		if i, err = consumeFold(s, i, end, bp, "byte prefix"); err != nil {
			return 0, true, err
		}
		b, derr := digitPair(s, i, end)
		if derr != nil {
			return 0, true, derr
		}
		dst[0] = b
		i += 2
		for bi := 1; bi < count; bi++ {
			if i, err = consumeFold(s, i, end, mid, "byte separator"); err != nil {
				return 0, true, err
			}
			if b, err = digitPair(s, i, end); err != nil {
				return 0, true, err
			}
			dst[bi] = b
			i += 2
		}
		if _, err = consumeFold(s, i, end, bx, "byte suffix"); err != nil {
			return 0, true, err
		}
		return count, true, nil
	}
}

// parseGrouped is the general path: a single scan that expects, before each
// byte, whichever of line separator, group separator or byte separator the
// position within the layout calls for.
func (f HexFormat) parseGrouped(s string, start, end int, dst []byte) (int, error) {
	bf := f.bytes
	bpl, bpg := bf.perLine(), bf.perGroup()

	i := start
	byteIndex := 0
	indexInLine, indexInGroup := 0, 0
	var err error
	for i < end {
		if indexInLine == bpl {
			switch {
			case s[i] == '\r' && i+1 < end && s[i+1] == '\n':
				i += 2
			case s[i] == '\r' || s[i] == '\n':
				i++
			default:
				return 0, &ParseError{Index: i, Expected: "a new line", Actual: snippet(s, i, 1)}
			}
			indexInLine, indexInGroup = 0, 0
		} else if indexInGroup == bpg {
			if i, err = consumeFold(s, i, end, bf.groupSeparator, "group separator"); err != nil {
				return 0, err
			}
			indexInGroup = 0
		} else if indexInGroup != 0 {
			if i, err = consumeFold(s, i, end, bf.byteSeparator, "byte separator"); err != nil {
				return 0, err
			}
		}
		indexInLine++
		indexInGroup++

		if i, err = consumeFold(s, i, end, bf.bytePrefix, "byte prefix"); err != nil {
			return 0, err
		}
		b, derr := digitPair(s, i, end)
		if derr != nil {
			return 0, derr
		}
		dst[byteIndex] = b
		byteIndex++
		i += 2
		if i, err = consumeFold(s, i, end, bf.byteSuffix, "byte suffix"); err != nil {
			return 0, err
		}
	}
	return byteIndex, nil
}

// digitPair reads the two hex digits of one byte at s[i], never looking past
// end. Running off the end is reported as a missing digit.
func digitPair(s string, i, end int) (byte, error) {
	if i+2 > end {
		return 0, &ParseError{Index: i, Expected: "exactly 2 hex digits", Actual: s[i:end]}
	}
	hi := hexToNibble[s[i]]
	if hi < 0 {
		return 0, &ParseError{Index: i, Expected: "a hex digit", Actual: snippet(s, i, 1)}
	}
	lo := hexToNibble[s[i+1]]
	if lo < 0 {
		return 0, &ParseError{Index: i + 1, Expected: "a hex digit", Actual: snippet(s, i+1, 1)}
	}
	return byte(hi)<<4 | byte(lo), nil
}

// consumeFold matches lit at s[i:] ignoring ASCII case and returns the index
// past it.
func consumeFold(s string, i, end int, lit, what string) (int, error) {
	if !matchFold(s, i, end, lit) {
		return 0, &ParseError{
			Index:    i,
			Expected: fmt.Sprintf("%s %q", what, lit),
			Actual:   snippet(s, i, len(lit)),
		}
	}
	return i + len(lit), nil
}
