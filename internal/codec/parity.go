package codec

import (
	"fmt"
	"strings"

	"paperwire/internal/frame"
)

// Parity returns the symbol-wise XOR of base-32 chunks, with shorter
// chunks extended by zero-value symbols to the longest length. XOR is its
// own inverse, so Parity(parity, good chunks...) reconstructs a missing
// chunk.
func Parity(chunks ...string) (string, error) {
	max := 0
	for _, c := range chunks {
		if len(c) > max {
			max = len(c)
		}
	}
	vals := make([]byte, max)
	for _, c := range chunks {
		for i := 0; i < len(c); i++ {
			v := frame.SymbolValue(c[i])
			if v < 0 {
				return "", fmt.Errorf("byte %q outside the base-32 alphabet", c[i])
			}
			vals[i] ^= byte(v)
		}
	}
	out := make([]byte, max)
	for i, v := range vals {
		out[i] = frame.Symbol(v)
	}
	return string(out), nil
}

// zeroResidue reports whether a parity residue carries no information,
// i.e. every symbol has value zero.
func zeroResidue(s string) bool {
	return strings.Trim(s, "A") == ""
}
