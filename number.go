package hexfmt

import "fmt"

// FormatUint8 formats v as 2 hex digits, honoring the number format.
func (f HexFormat) FormatUint8(v uint8) string { return f.formatUint(uint64(v), 2) }

// FormatUint16 formats v as 4 hex digits, honoring the number format.
func (f HexFormat) FormatUint16(v uint16) string { return f.formatUint(uint64(v), 4) }

// FormatUint32 formats v as 8 hex digits, honoring the number format.
func (f HexFormat) FormatUint32(v uint32) string { return f.formatUint(uint64(v), 8) }

// FormatUint64 formats v as 16 hex digits, honoring the number format.
func (f HexFormat) FormatUint64(v uint64) string { return f.formatUint(v, 16) }

// formatUint writes the value as digits nibbles, most significant first.
// With RemoveLeadingZeros, leading zero digits are skipped but at least one
// digit is always emitted, so zero renders as "0".
func (f HexFormat) formatUint(v uint64, digits int) string {
	tbl := f.digits()
	nf := f.number

	if nf.digitsOnly() {
		var scratch [16]byte
		w := v
		for i := digits - 1; i >= 0; i-- {
			scratch[i] = tbl[w&0x0f]
			w >>= 4
		}
		if nf.removeLeadingZeros {
			lead := 0
			for lead < digits-1 && scratch[lead] == '0' {
				lead++
			}
			return string(scratch[lead:digits])
		}
		return string(scratch[:digits])
	}

	buf := make([]byte, 0, len(nf.prefix)+digits+len(nf.suffix))
	buf = append(buf, nf.prefix...)
	inLeadingZeros := nf.removeLeadingZeros
	for i := digits - 1; i >= 0; i-- {
		nib := byte(v>>(uint(i)*4)) & 0x0f
		if inLeadingZeros {
			if nib == 0 && i > 0 {
				continue
			}
			inLeadingZeros = false
		}
		buf = append(buf, tbl[nib])
	}
	buf = append(buf, nf.suffix...)
	return string(buf)
}

// ParseUint8 parses all of s as an 8-bit value.
func (f HexFormat) ParseUint8(s string) (uint8, error) {
	v, err := f.parseUint(s, 0, len(s), 2)
	return uint8(v), err
}

// ParseUint8Range parses s[start:end] as an 8-bit value.
func (f HexFormat) ParseUint8Range(s string, start, end int) (uint8, error) {
	v, err := f.parseUint(s, start, end, 2)
	return uint8(v), err
}

// ParseUint16 parses all of s as a 16-bit value.
func (f HexFormat) ParseUint16(s string) (uint16, error) {
	v, err := f.parseUint(s, 0, len(s), 4)
	return uint16(v), err
}

// ParseUint16Range parses s[start:end] as a 16-bit value.
func (f HexFormat) ParseUint16Range(s string, start, end int) (uint16, error) {
	v, err := f.parseUint(s, start, end, 4)
	return uint16(v), err
}

// ParseUint32 parses all of s as a 32-bit value.
func (f HexFormat) ParseUint32(s string) (uint32, error) {
	v, err := f.parseUint(s, 0, len(s), 8)
	return uint32(v), err
}

// ParseUint32Range parses s[start:end] as a 32-bit value.
func (f HexFormat) ParseUint32Range(s string, start, end int) (uint32, error) {
	v, err := f.parseUint(s, start, end, 8)
	return uint32(v), err
}

// ParseUint64 parses all of s as a 64-bit value.
func (f HexFormat) ParseUint64(s string) (uint64, error) {
	return f.parseUint(s, 0, len(s), 16)
}

// ParseUint64Range parses s[start:end] as a 64-bit value.
func (f HexFormat) ParseUint64Range(s string, start, end int) (uint64, error) {
	return f.parseUint(s, start, end, 16)
}

// parseUint expects prefix, 1..maxDigits hex digits, then suffix. Literals
// match ignoring ASCII case. Any digit count up to maxDigits is accepted
// regardless of RemoveLeadingZeros, so every output of the same format
// parses back. The digit bound keeps the accumulator from overflowing
// before narrowing.
func (f HexFormat) parseUint(s string, start, end, maxDigits int) (uint64, error) {
	if err := checkRange(start, end, len(s)); err != nil {
		return 0, err
	}
	nf := f.number

	if end-start-len(nf.prefix) <= len(nf.suffix) {
		return 0, &ParseError{
			Index:    start,
			Expected: fmt.Sprintf("at least 1 hexadecimal digit between prefix %q and suffix %q", nf.prefix, nf.suffix),
			Actual:   s[start:end],
		}
	}
	var err error
	var ds int
	if ds, err = consumeFold(s, start, end, nf.prefix, "prefix"); err != nil {
		return 0, err
	}
	de := end - len(nf.suffix)
	if _, err = consumeFold(s, de, end, nf.suffix, "suffix"); err != nil {
		return 0, err
	}
	if de-ds > maxDigits {
		return 0, &ParseError{
			Index:    ds,
			Expected: fmt.Sprintf("at most %d hexadecimal digits", maxDigits),
			Actual:   s[ds:de],
		}
	}

	var r uint64
	for i := ds; i < de; i++ {
		d := hexToNibble[s[i]]
		if d < 0 {
			return 0, &ParseError{Index: i, Expected: "a hex digit", Actual: snippet(s, i, 1)}
		}
		r = r<<4 | uint64(d)
	}
	return r, nil
}
