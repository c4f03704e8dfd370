package codec

import (
	"fmt"
	"strings"

	"paperwire/internal/domain"
	"paperwire/internal/frame"
)

// Decoder reconstructs raw bytes from transcript lines.
//
// Decoding is whole-or-nothing: the result is either the exact original
// bytes or a FormatError/CorruptionError, never a best-effort partial
// output. One damaged or missing data line per group is repaired from the
// group's parity line. When the repaired line is the last of the stream
// its true payload length is inferred from the damaged line's observed
// length, or from the parity residue when the line is absent entirely;
// a short final chunk lost from a multi-line group can gain trailing zero
// bytes since the format carries no explicit length trailer.
type Decoder struct {
	p domain.Params
}

// NewDecoder validates p and returns a Decoder.
func NewDecoder(p domain.Params) (*Decoder, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{p: p}, nil
}

// orderKey orders transcript positions: data lines ascend within their
// group, each group's parity line follows its data and precedes the next
// group.
type orderKey struct {
	group, phase, index int
}

func (k orderKey) before(o orderKey) bool {
	if k.group != o.group {
		return k.group < o.group
	}
	if k.phase != o.phase {
		return k.phase < o.phase
	}
	return k.index < o.index
}

// Decode parses lines, verifies every checksum, repairs what parity can
// repair, and returns the original bytes together with a per-group report.
func (d *Decoder) Decode(lines []string) ([]byte, *domain.Report, error) {
	gs := d.p.GroupSize

	data := make(map[int]domain.Line)
	parity := make(map[int]domain.Line)
	report := &domain.Report{}

	prev := orderKey{group: -1}
	for i, text := range lines {
		if strings.TrimSpace(text) == "" {
			continue
		}
		ln, err := frame.Parse(text, d.p)
		if err != nil {
			return nil, nil, &domain.FormatError{Line: i + 1, Reason: err.Error()}
		}
		report.Lines++

		var key orderKey
		if ln.Kind == domain.ParityLine {
			key = orderKey{group: ln.Index, phase: 1}
			if _, dup := parity[ln.Index]; dup {
				return nil, nil, &domain.FormatError{Line: i + 1, Reason: fmt.Sprintf("duplicate parity tag for group %d", ln.Index)}
			}
			parity[ln.Index] = ln
		} else {
			key = orderKey{group: (ln.Index - 1) / gs, index: ln.Index}
			if _, dup := data[ln.Index]; dup {
				return nil, nil, &domain.FormatError{Line: i + 1, Reason: fmt.Sprintf("duplicate data tag %d", ln.Index)}
			}
			data[ln.Index] = ln
		}
		if !prev.before(key) {
			return nil, nil, &domain.FormatError{Line: i + 1, Reason: "tag out of sequence"}
		}
		prev = key
	}
	if report.Lines == 0 {
		return nil, report, nil
	}

	// Parity lines define the group count: every group ends with exactly one.
	groups := 0
	for g := range parity {
		if g+1 > groups {
			groups = g + 1
		}
	}
	if groups == 0 {
		return nil, nil, &domain.FormatError{Reason: "transcript has no parity lines"}
	}
	for g := 0; g < groups; g++ {
		if _, ok := parity[g]; !ok {
			return nil, nil, &domain.FormatError{Reason: fmt.Sprintf("parity line for group %d absent", g)}
		}
	}

	// last is the highest data index observed; it fixes the total base-32
	// character count since every chunk before it is exactly Width wide.
	last := 0
	for i := range data {
		if i > last {
			last = i
		}
	}
	if last > groups*gs {
		return nil, nil, &domain.FormatError{Reason: fmt.Sprintf("parity line for group %d absent", (last-1)/gs)}
	}

	chunks := make(map[int]string)
	for g := 0; g < groups; g++ {
		lo := g*gs + 1
		hi := (g + 1) * gs
		final := g == groups-1
		if final {
			hi = last // may fall below lo when no data line of the final group survived
		}

		st := domain.GroupStatus{Group: g}
		if hi >= lo {
			st.Lines = hi - lo + 1
		}

		var good []string
		var bad []int
		absent := 0
		for i := lo; i <= hi; i++ {
			ln, ok := data[i]
			switch {
			case !ok:
				bad = append(bad, i)
				absent++
			case !d.payloadOK(ln.Payload, i == last):
				bad = append(bad, i)
			case frame.Checksum(ln.Payload) != ln.Checksum:
				bad = append(bad, i)
			default:
				chunks[i] = ln.Payload
				good = append(good, ln.Payload)
			}
		}

		pl := parity[g]
		parityGood := frame.Checksum(pl.Payload) == pl.Checksum && symbolsOK(pl.Payload) && len(pl.Payload) <= d.p.Width
		st.BadData = bad
		st.Parity = parityGood

		switch {
		case len(bad) == 0:
			if !parityGood {
				break // parity damage alone does not prevent decoding
			}
			residue, err := Parity(append(append([]string(nil), good...), pl.Payload)...)
			if err != nil {
				return nil, nil, err
			}
			if zeroResidue(residue) {
				break
			}
			if final && hi < (g+1)*gs {
				// Every checksum verifies yet parity disagrees: a data line
				// was dropped after the last observed one. The residue is
				// that chunk; its length is unknowable beyond trimming the
				// zero-symbol tail.
				rec := strings.TrimRight(residue, "A")
				last = hi + 1
				chunks[last] = rec
				st.Repaired = last
				st.Lines++
			} else {
				return nil, nil, &domain.CorruptionError{Group: g}
			}

		case len(bad) == 1 && parityGood:
			rec, err := Parity(append(append([]string(nil), good...), pl.Payload)...)
			if err != nil {
				return nil, nil, err
			}
			if bad[0] < last {
				// Interior chunks are always exactly Width wide.
				if len(rec) < d.p.Width {
					return nil, nil, &domain.CorruptionError{Group: g, BadData: bad}
				}
				rec = rec[:d.p.Width]
			} else if ln, ok := data[bad[0]]; ok && len(ln.Payload) > 0 && len(ln.Payload) < len(rec) {
				// The damaged final line still shows its true width: print
				// noise garbles characters, it does not change field length.
				rec = rec[:len(ln.Payload)]
			}
			if final && hi < (g+1)*gs {
				// An underfull final group can hide a dropped trailing line;
				// the parity would then fold that invisible chunk into the
				// repair. When the damaged line is present its emitted
				// checksum names the true chunk, so hold the repair to it.
				if ln, ok := data[bad[0]]; ok && frame.Checksum(rec) != ln.Checksum {
					return nil, nil, &domain.CorruptionError{Group: g, BadData: bad}
				}
			}
			chunks[bad[0]] = rec
			st.Repaired = bad[0]

		case absent == len(bad) && absent >= 2:
			return nil, nil, &domain.FormatError{
				Reason: fmt.Sprintf("group %d: %d data lines missing, beyond single-line repair", g, absent),
			}

		default:
			return nil, nil, &domain.CorruptionError{Group: g, BadData: bad}
		}
		report.Groups = append(report.Groups, st)
	}

	var sb strings.Builder
	for i := 1; i <= last; i++ {
		c, ok := chunks[i]
		if !ok {
			return nil, nil, &domain.FormatError{Reason: fmt.Sprintf("chunk %d unaccounted for", i)}
		}
		sb.WriteString(c)
	}
	raw, err := frame.Base32.DecodeString(sb.String())
	if err != nil {
		return nil, nil, &domain.FormatError{Reason: "recovered text is not valid base-32: " + err.Error()}
	}
	return raw, report, nil
}

// payloadOK checks a data payload's alphabet and width. Only the stream's
// final chunk may be narrower than Width.
func (d *Decoder) payloadOK(payload string, streamLast bool) bool {
	if !symbolsOK(payload) {
		return false
	}
	if streamLast {
		return len(payload) >= 1 && len(payload) <= d.p.Width
	}
	return len(payload) == d.p.Width
}

func symbolsOK(s string) bool {
	for i := 0; i < len(s); i++ {
		if frame.SymbolValue(s[i]) < 0 {
			return false
		}
	}
	return true
}
