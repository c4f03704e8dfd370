package domain

import "io"

// Encoder turns raw bytes into transcript lines.
type Encoder interface {
	Encode(raw []byte) ([]string, error)
}

// Decoder reconstructs raw bytes from transcript lines, repairing at most
// one damaged data line per group.
type Decoder interface {
	Decode(lines []string) ([]byte, *Report, error)
}

// Transfer is the surface the CLI drives: whole-stream encode and decode
// with the optional compression and fingerprint steps applied. The File
// variants read and write named files, reporting unreadable inputs as
// InputError and replacing outputs atomically.
type Transfer interface {
	EncodeStream(r io.Reader, w io.Writer) (*TransferInfo, error)
	DecodeStream(r io.Reader, w io.Writer) (*TransferInfo, error)
	EncodeFile(src, dst string) (*TransferInfo, error)
	DecodeFile(src, dst string) (*TransferInfo, error)
}

// TransferInfo describes a completed transfer operation.
type TransferInfo struct {
	RawBytes    int    // size of the uncompressed payload
	Fingerprint string // hex BLAKE2b-256 of the uncompressed payload
	Lines       int    // transcript lines written or consumed
	Report      *Report
}
