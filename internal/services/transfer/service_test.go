package transfer_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"paperwire/internal/digest"
	"paperwire/internal/domain"
	"paperwire/internal/services/transfer"
)

func newService(t *testing.T, compress bool) *transfer.Service {
	t.Helper()
	svc, err := transfer.New(domain.DefaultParams(), compress, nil)
	if err != nil {
		t.Fatalf("transfer.New: %v", err)
	}
	return svc
}

func TestStream_RoundTrip(t *testing.T) {
	raw := bytes.Repeat([]byte("paper channels eat bits\x00\xff"), 40)

	for _, compress := range []bool{false, true} {
		svc := newService(t, compress)

		var encoded bytes.Buffer
		info, err := svc.EncodeStream(bytes.NewReader(raw), &encoded)
		if err != nil {
			t.Fatalf("compress=%v: EncodeStream: %v", compress, err)
		}
		if info.RawBytes != len(raw) {
			t.Fatalf("compress=%v: RawBytes = %d, want %d", compress, info.RawBytes, len(raw))
		}
		if info.Fingerprint != digest.SumBytes(raw) {
			t.Fatalf("compress=%v: fingerprint mismatch", compress)
		}

		var decoded bytes.Buffer
		out, err := svc.DecodeStream(&encoded, &decoded)
		if err != nil {
			t.Fatalf("compress=%v: DecodeStream: %v", compress, err)
		}
		if diff := cmp.Diff(raw, decoded.Bytes()); diff != "" {
			t.Fatalf("compress=%v: round trip mismatch (-want +got):\n%s", compress, diff)
		}
		if out.Fingerprint != info.Fingerprint {
			t.Fatalf("compress=%v: fingerprints diverge: %s vs %s", compress, out.Fingerprint, info.Fingerprint)
		}
	}
}

func TestFiles_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "payload.bin")
	enc := filepath.Join(dir, "payload.txt")
	dst := filepath.Join(dir, "restored.bin")

	raw := []byte("HELLO WORLD")
	if err := os.WriteFile(src, raw, 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svc := newService(t, false)
	if _, err := svc.EncodeFile(src, enc); err != nil {
		t.Fatalf("EncodeFile: %v", err)
	}
	info, err := svc.DecodeFile(enc, dst)
	if err != nil {
		t.Fatalf("DecodeFile: %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read restored: %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Fatalf("restored %q, want %q", got, raw)
	}
	if info.Fingerprint != digest.SumBytes(raw) {
		t.Fatalf("fingerprint mismatch")
	}
}

func TestEncodeFile_MissingInput(t *testing.T) {
	svc := newService(t, false)
	dir := t.TempDir()

	_, err := svc.EncodeFile(filepath.Join(dir, "absent"), filepath.Join(dir, "out"))
	var ie *domain.InputError
	if !errors.As(err, &ie) {
		t.Fatalf("got %v, want InputError", err)
	}
}

func TestDecodeStream_CompressionMismatch(t *testing.T) {
	raw := []byte("agreement matters on both ends")

	var encoded bytes.Buffer
	if _, err := newService(t, false).EncodeStream(bytes.NewReader(raw), &encoded); err != nil {
		t.Fatalf("EncodeStream: %v", err)
	}

	var decoded bytes.Buffer
	if _, err := newService(t, true).DecodeStream(&encoded, &decoded); err == nil {
		t.Fatal("expected error decoding uncompressed payload as compressed")
	}
}
