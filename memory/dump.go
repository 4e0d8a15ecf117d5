package memory

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"

	"github.com/wasm2go/rt/bounds"
)

const dumpHeader = "00 01 02 03  04 05 06 07  08 09 0A 0B  0C 0D 0E 0F  ASCII"

// hexRowWidth is the rendered width of a full 16-byte row: two digits per
// byte, single spaces inside each 4-byte group, double spaces between
// groups and before the first.
const hexRowWidth = 16*2 + 12 + 4*2

// Dump writes a hex listing of the window [addr, addr+length) of mem to w,
// 16 bytes per row with an ASCII column. The window is clamped to the
// memory's current size.
func Dump[I bounds.Address](w io.Writer, mem Memory[I], addr, length I) error {
	size := ByteSize(mem)
	start := uint64(addr)
	if start > size {
		start = size
	}
	end, carry := bits.Add64(uint64(addr), uint64(length), 0)
	if carry != 0 || end > size {
		end = size
	}

	width := 7
	if end > 1 {
		if n := len(strconv.FormatUint(end-1, 16)); n > width {
			width = n
		}
	}
	if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, "Address", dumpHeader); err != nil {
		return err
	}

	var row [16]byte
	var line strings.Builder
	for start < end {
		n := end - start
		if n > 16 {
			n = 16
		}
		chunk := row[:n]
		if err := mem.CopyTo(I(start), chunk); err != nil {
			return err
		}

		line.Reset()
		fmt.Fprintf(&line, "%0*X", width, start)
		for i, b := range chunk {
			if i%4 == 0 {
				line.WriteString("  ")
			} else {
				line.WriteByte(' ')
			}
			fmt.Fprintf(&line, "%02X", b)
		}
		for pad := hexRowWidth - rowWidth(len(chunk)); pad > 0; pad-- {
			line.WriteByte(' ')
		}
		line.WriteString("  ")
		for _, b := range chunk {
			if b >= 0x20 && b <= 0x7e {
				line.WriteByte(b)
			} else {
				line.WriteByte('.')
			}
		}
		line.WriteByte('\n')
		if _, err := io.WriteString(w, line.String()); err != nil {
			return err
		}
		start += n
	}
	return nil
}

// rowWidth returns the rendered width of the first n bytes of a row.
func rowWidth(n int) int {
	if n == 0 {
		return 0
	}
	groups := (n + 3) / 4
	return n*2 + (n - groups) + groups*2
}
