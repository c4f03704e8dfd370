package transfer

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zlib"
	"go.uber.org/zap"

	"paperwire/internal/codec"
	"paperwire/internal/digest"
	"paperwire/internal/domain"
	"paperwire/internal/transcript"
)

// Service implements domain.Transfer.
type Service struct {
	enc      *codec.Encoder
	dec      *codec.Decoder
	compress bool
	log      *zap.Logger
}

// New constructs a transfer Service. A nil logger disables diagnostics.
func New(p domain.Params, compress bool, log *zap.Logger) (*Service, error) {
	enc, err := codec.NewEncoder(p)
	if err != nil {
		return nil, err
	}
	dec, err := codec.NewDecoder(p)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{enc: enc, dec: dec, compress: compress, log: log}, nil
}

// EncodeStream reads all of r, encodes it, and writes the transcript to w.
func (s *Service) EncodeStream(r io.Reader, w io.Writer) (*domain.TransferInfo, error) {
	lines, info, err := s.encode(r)
	if err != nil {
		return nil, err
	}
	if err := transcript.Write(w, lines); err != nil {
		return nil, err
	}
	return info, nil
}

// EncodeFile encodes the file at src into a transcript file at dst.
func (s *Service) EncodeFile(src, dst string) (*domain.TransferInfo, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, &domain.InputError{Path: src, Err: err}
	}
	defer f.Close()

	lines, info, err := s.encode(f)
	if err != nil {
		return nil, err
	}
	if err := transcript.WriteFile(dst, lines, 0o644); err != nil {
		return nil, err
	}
	return info, nil
}

// DecodeFile decodes the transcript at src into a file at dst.
func (s *Service) DecodeFile(src, dst string) (*domain.TransferInfo, error) {
	f, err := os.Open(src)
	if err != nil {
		return nil, &domain.InputError{Path: src, Err: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	info, err := s.DecodeStream(f, &buf)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(dst, buf.Bytes(), 0o644); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *Service) encode(r io.Reader) ([]string, *domain.TransferInfo, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	payload := raw
	if s.compress {
		payload, err = deflate(raw)
		if err != nil {
			return nil, nil, err
		}
	}

	lines, err := s.enc.Encode(payload)
	if err != nil {
		return nil, nil, err
	}
	info := &domain.TransferInfo{
		RawBytes:    len(raw),
		Fingerprint: digest.SumBytes(raw),
		Lines:       len(lines),
	}
	s.log.Debug("encoded stream",
		zap.Int("raw_bytes", len(raw)),
		zap.Int("payload_bytes", len(payload)),
		zap.Int("lines", len(lines)),
		zap.Bool("compressed", s.compress),
		zap.String("fingerprint", info.Fingerprint),
	)
	return lines, info, nil
}

// DecodeStream reads a transcript from r, decodes and repairs it, and
// writes the original bytes to w.
func (s *Service) DecodeStream(r io.Reader, w io.Writer) (*domain.TransferInfo, error) {
	lines, err := transcript.Read(r)
	if err != nil {
		return nil, err
	}
	payload, report, err := s.dec.Decode(lines)
	if err != nil {
		return nil, err
	}
	raw := payload
	if s.compress {
		raw, err = inflate(payload)
		if err != nil {
			return nil, fmt.Errorf("decompress: %w", err)
		}
	}

	for _, idx := range report.Repaired() {
		s.log.Info("repaired data line from parity", zap.Int("chunk", idx))
	}
	s.log.Debug("decoded stream",
		zap.Int("lines", report.Lines),
		zap.Int("groups", len(report.Groups)),
		zap.Int("raw_bytes", len(raw)),
		zap.Bool("compressed", s.compress),
	)

	if _, err := w.Write(raw); err != nil {
		return nil, err
	}
	return &domain.TransferInfo{
		RawBytes:    len(raw),
		Fingerprint: digest.SumBytes(raw),
		Lines:       report.Lines,
		Report:      report,
	}, nil
}

func deflate(raw []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func inflate(payload []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
