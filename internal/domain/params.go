package domain

import "fmt"

// Params fixes the shape of an encoded transcript. Encoder and decoder must
// use identical values or decoding fails deterministically.
type Params struct {
	// Width is the number of payload characters per line.
	Width int
	// GroupSize is the number of data lines protected by one parity line.
	GroupSize int
	// ParityTag is the single printable byte that prefixes parity tags,
	// distinguishing them from the all-digit data tags.
	ParityTag byte
}

// DefaultParams returns the reference transcript shape: 60-character
// payloads, ten data lines per parity line, parity tags prefixed 'P'.
func DefaultParams() Params {
	return Params{Width: 60, GroupSize: 10, ParityTag: 'P'}
}

// Validate reports the first structural problem with p, if any.
func (p Params) Validate() error {
	if p.Width < 1 {
		return fmt.Errorf("width must be positive, got %d", p.Width)
	}
	if p.GroupSize < 1 {
		return fmt.Errorf("group size must be positive, got %d", p.GroupSize)
	}
	if p.ParityTag < '!' || p.ParityTag > '~' || (p.ParityTag >= '0' && p.ParityTag <= '9') {
		return fmt.Errorf("parity tag must be a printable non-digit character, got %q", p.ParityTag)
	}
	return nil
}
