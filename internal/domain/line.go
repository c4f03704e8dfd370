package domain

// LineKind distinguishes the two transcript line shapes.
type LineKind int

const (
	// DataLine carries one base-32 chunk of the payload stream.
	DataLine LineKind = iota
	// ParityLine carries the XOR parity of its group's data chunks.
	ParityLine
)

// Line is the atomic transport unit of a transcript.
type Line struct {
	Kind LineKind
	// Index is the 1-based global chunk index for data lines, or the
	// 0-based group index for parity lines.
	Index int
	// Payload is the base-32 text with trailing pad spaces already trimmed.
	Payload string
	// Checksum is the declared IEEE CRC-32 of Payload.
	Checksum uint32
}

// GroupStatus describes one parity group after checksum verification.
type GroupStatus struct {
	Group    int
	Lines    int   // data lines the group should contain
	BadData  []int // 1-based global indices that failed or were absent
	Parity   bool  // parity line present and checksum-clean
	Repaired int   // global index repaired via parity, 0 if none
}

// Report summarises a decode for logging and inspection.
type Report struct {
	Lines  int // total transcript lines parsed
	Groups []GroupStatus
}

// Repaired returns the global indices that were reconstructed from parity.
func (r *Report) Repaired() []int {
	var out []int
	for _, g := range r.Groups {
		if g.Repaired != 0 {
			out = append(out, g.Repaired)
		}
	}
	return out
}
