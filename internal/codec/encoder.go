package codec

import (
	"paperwire/internal/domain"
	"paperwire/internal/frame"
)

// Encoder turns raw bytes into transcript lines.
type Encoder struct {
	p domain.Params
}

// NewEncoder validates p and returns an Encoder.
func NewEncoder(p domain.Params) (*Encoder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Encoder{p: p}, nil
}

// Encode produces the full transcript for raw: each group's data lines in
// chunk order, immediately followed by that group's parity line. Empty
// input yields an empty transcript.
func (e *Encoder) Encode(raw []byte) ([]string, error) {
	text := frame.Base32.EncodeToString(raw)
	if text == "" {
		return nil, nil
	}

	var chunks []string
	for off := 0; off < len(text); off += e.p.Width {
		end := off + e.p.Width
		if end > len(text) {
			end = len(text)
		}
		chunks = append(chunks, text[off:end])
	}

	var lines []string
	for g := 0; g*e.p.GroupSize < len(chunks); g++ {
		lo := g * e.p.GroupSize
		hi := lo + e.p.GroupSize
		if hi > len(chunks) {
			hi = len(chunks)
		}
		group := chunks[lo:hi]

		for j, c := range group {
			lines = append(lines, frame.Format(domain.Line{
				Kind:     domain.DataLine,
				Index:    lo + j + 1,
				Payload:  c,
				Checksum: frame.Checksum(c),
			}, e.p))
		}

		parity, err := Parity(group...)
		if err != nil {
			return nil, err
		}
		lines = append(lines, frame.Format(domain.Line{
			Kind:     domain.ParityLine,
			Index:    g,
			Payload:  parity,
			Checksum: frame.Checksum(parity),
		}, e.p))
	}
	return lines, nil
}
