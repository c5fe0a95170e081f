package hexfmt

// FormatBytes formats all of b.
func (f HexFormat) FormatBytes(b []byte) (string, error) {
	return f.FormatBytesRange(b, 0, len(b))
}

// FormatBytesRange formats b[start:end]. The output is written into a single
// buffer sized up front from the configuration; an empty range yields "".
func (f HexFormat) FormatBytesRange(b []byte, start, end int) (string, error) {
	if err := checkRange(start, end, len(b)); err != nil {
		return "", err
	}
	if start == end {
		return "", nil
	}

	total, err := f.formattedLen(end - start)
	if err != nil {
		return "", err
	}
	dst := make([]byte, total)

	var pos int
	if f.bytes.plain() {
		pos = f.formatFlat(dst, b[start:end])
	} else {
		pos = f.formatGrouped(dst, b[start:end])
	}
	if pos != total {
		panic("hexfmt: formatted length does not match precomputed size")
	}
	return string(dst), nil
}

// formatFlat handles formats without wrapping or grouping. Group separators
// and line breaks never occur here.
func (f HexFormat) formatFlat(dst, src []byte) int {
	digits := f.digits()
	bp := f.bytes.bytePrefix
	bx := f.bytes.byteSuffix
	bs := f.bytes.byteSeparator

	switch {
	case bp == "" && bx == "" && bs == "":
		j := 0
		for _, v := range src {
			dst[j] = digits[v>>4]
			dst[j+1] = digits[v&0x0f]
			j += 2
		}
		return j

	case bp == "" && bx == "" && len(bs) == 1:
		sep := bs[0]
		dst[0] = digits[src[0]>>4]
		dst[1] = digits[src[0]&0x0f]
		j := 2
		for _, v := range src[1:] {
			dst[j] = sep
			dst[j+1] = digits[v>>4]
			dst[j+2] = digits[v&0x0f]
			j += 3
		}
		return j

	default:
		j := 0
		for i, v := range src {
			if i > 0 {
				j += copy(dst[j:], bs)
			}
			j += copy(dst[j:], bp)
			dst[j] = digits[v>>4]
			dst[j+1] = digits[v&0x0f]
			j += 2
			j += copy(dst[j:], bx)
		}
		return j
	}
}

// formatGrouped is the general path: it tracks the byte position within the
// current line and group and emits the appropriate separator before each
// byte.
func (f HexFormat) formatGrouped(dst, src []byte) int {
	digits := f.digits()
	bf := f.bytes
	bpl, bpg := bf.perLine(), bf.perGroup()

	j := 0
	indexInLine, indexInGroup := 0, 0
	for _, v := range src {
		if indexInLine == bpl {
			dst[j] = '\n'
			j++
			indexInLine, indexInGroup = 0, 0
		} else if indexInGroup == bpg {
			j += copy(dst[j:], bf.groupSeparator)
			indexInGroup = 0
		} else if indexInGroup != 0 {
			j += copy(dst[j:], bf.byteSeparator)
		}
		j += copy(dst[j:], bf.bytePrefix)
		dst[j] = digits[v>>4]
		dst[j+1] = digits[v&0x0f]
		j += 2
		j += copy(dst[j:], bf.byteSuffix)
		indexInLine++
		indexInGroup++
	}
	return j
}
