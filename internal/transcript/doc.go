// Package transcript reads and writes transcript files at the I/O
// boundary. Readers tolerate CRLF endings and blank lines, since
// transcripts travel through printers, scanners and clipboards; writers
// replace the target atomically via a temp file.
package transcript
