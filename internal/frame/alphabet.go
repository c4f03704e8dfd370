package frame

import "encoding/base32"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

// Base32 is the RFC 4648 encoding without '=' padding; transcripts never
// carry padding characters.
var Base32 = base32.StdEncoding.WithPadding(base32.NoPadding)

var symVal [256]int8

func init() {
	for i := range symVal {
		symVal[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		symVal[alphabet[i]] = int8(i)
	}
}

// SymbolValue returns the 5-bit value of a base-32 alphabet byte, or -1
// for bytes outside the alphabet.
func SymbolValue(c byte) int8 { return symVal[c] }

// Symbol returns the alphabet byte for a 5-bit value.
func Symbol(v byte) byte { return alphabet[v&31] }
