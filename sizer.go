package hexfmt

import (
	"fmt"
	"math"
)

// formattedLen returns the exact length of the formatted output for n bytes,
// n >= 1. All arithmetic runs in 64 bits; lengths past math.MaxInt fail with
// ErrCapacityExceeded.
func (f HexFormat) formattedLen(n int) (int, error) {
	bf := f.bytes
	nn := int64(n)
	bpl := int64(bf.perLine())
	bpg := int64(bf.perGroup())
	gs := int64(len(bf.groupSeparator))
	bs := int64(len(bf.byteSeparator))
	perByte := int64(len(bf.bytePrefix)) + 2 + int64(len(bf.byteSuffix))

	lineSeps := (nn - 1) / bpl
	groupSepsPerLine := (bpl - 1) / bpg
	lastLine := nn % bpl
	if lastLine == 0 {
		lastLine = bpl
	}
	groupSeps := lineSeps*groupSepsPerLine + (lastLine-1)/bpg
	if bf.plain() {
		// The flat encoder emits no line or group separators, however many
		// bytes there are.
		lineSeps, groupSeps = 0, 0
	}
	byteSeps := nn - 1 - lineSeps - groupSeps

	total := lineSeps + groupSeps*gs + byteSeps*bs + nn*perByte
	if total < 0 || total > math.MaxInt {
		return 0, fmt.Errorf("%w: %d bytes at %d chars per byte", ErrCapacityExceeded, n, perByte)
	}
	return int(total), nil
}

// parsedMaxLen returns an upper bound on the number of bytes a string of
// length L, L >= 1, can decode to. Line separators are assumed single-char
// to maximize the bound; the parser shrinks to the actual count afterwards.
func (f HexFormat) parsedMaxLen(L int) int {
	bf := f.bytes
	ll := int64(L)
	bpl := int64(bf.perLine())
	bpg := int64(bf.perGroup())
	gs := int64(len(bf.groupSeparator))
	bs := int64(len(bf.byteSeparator))
	perByte := int64(len(bf.bytePrefix)) + 2 + int64(len(bf.byteSuffix))

	perGroup := perByte*bpg + bs*(bpg-1)
	var perLine int64
	if bpl <= bpg {
		perLine = perByte*bpl + bs*(bpl-1)
	} else {
		g := bpl / bpg
		last := bpl % bpg
		perLine = perGroup*g + gs*(g-1)
		if last > 0 {
			perLine += gs + perByte*last + bs*(last-1)
		}
	}

	wholeLines := (ll + 1) / (perLine + 1)
	ll -= wholeLines * (perLine + 1)
	wholeGroups := ll / (perGroup + gs)
	ll -= wholeGroups * (perGroup + gs)
	wholeBytes := ll / (perByte + bs)
	ll -= wholeBytes * (perByte + bs)
	var spare int64
	if ll > 0 {
		spare = 1
	}
	return int(wholeLines*bpl + wholeGroups*bpg + wholeBytes + spare)
}
