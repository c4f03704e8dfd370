package transcript_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"paperwire/internal/transcript"
)

func TestRead_NormalisesNoise(t *testing.T) {
	in := "000001 ABC 12345678\r\n\n   \nP00000 ABC 12345678\n"
	lines, err := transcript.Read(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	want := []string{"000001 ABC 12345678", "P00000 ABC 12345678"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestWrite_TerminatesLines(t *testing.T) {
	var sb strings.Builder
	if err := transcript.Write(&sb, []string{"one", "two"}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if sb.String() != "one\ntwo\n" {
		t.Fatalf("got %q", sb.String())
	}
}

func TestWriteFile_ReadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	lines := []string{"000001 ABC 12345678", "P00000 ABC 12345678"}

	if err := transcript.WriteFile(path, lines, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err := transcript.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != len(lines) || got[0] != lines[0] || got[1] != lines[1] {
		t.Fatalf("round trip: got %v", got)
	}

	// No temp file debris next to the target.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want 1", len(entries))
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := transcript.ReadFile(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
