package frame

import (
	"fmt"
	"hash/crc32"
	"strconv"
	"strings"

	"paperwire/internal/domain"
)

// Overhead is the number of non-payload characters per line: the 6-byte
// tag, the 8-byte checksum and the two separating spaces.
const Overhead = 6 + 1 + 1 + 8

// Checksum returns the IEEE CRC-32 of the unpadded payload text.
func Checksum(payload string) uint32 {
	return crc32.ChecksumIEEE([]byte(payload))
}

// Format renders l as one fixed-width transcript line without a trailing
// newline. The payload is left-justified and space-padded to p.Width.
func Format(l domain.Line, p domain.Params) string {
	var tag string
	switch l.Kind {
	case domain.ParityLine:
		tag = fmt.Sprintf("%c%05d", p.ParityTag, l.Index)
	default:
		tag = fmt.Sprintf("%06d", l.Index)
	}
	return fmt.Sprintf("%s %-*s %08x", tag, p.Width, l.Payload, l.Checksum)
}

// Parse reads one transcript line back into a Line. The returned payload
// has trailing pad spaces trimmed; the declared checksum is not verified
// here, callers compare it against Checksum themselves.
func Parse(text string, p domain.Params) (domain.Line, error) {
	if len(text) != p.Width+Overhead {
		return domain.Line{}, fmt.Errorf("length %d, want %d", len(text), p.Width+Overhead)
	}
	tag := text[:6]
	if text[6] != ' ' || text[7+p.Width] != ' ' {
		return domain.Line{}, fmt.Errorf("missing field separator")
	}
	payload := strings.TrimRight(text[7:7+p.Width], " ")

	sum, err := strconv.ParseUint(text[8+p.Width:], 16, 32)
	if err != nil {
		return domain.Line{}, fmt.Errorf("bad checksum field %q", text[8+p.Width:])
	}

	l := domain.Line{Payload: payload, Checksum: uint32(sum)}
	if tag[0] == p.ParityTag {
		idx, err := parseIndex(tag[1:])
		if err != nil {
			return domain.Line{}, fmt.Errorf("bad parity tag %q", tag)
		}
		l.Kind = domain.ParityLine
		l.Index = idx
		return l, nil
	}
	idx, err := parseIndex(tag)
	if err != nil || idx == 0 {
		return domain.Line{}, fmt.Errorf("bad data tag %q", tag)
	}
	l.Kind = domain.DataLine
	l.Index = idx
	return l, nil
}

// parseIndex accepts only unsigned decimal digits, rejecting the signs and
// whitespace strconv would otherwise allow.
func parseIndex(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit in index %q", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return n, nil
}
