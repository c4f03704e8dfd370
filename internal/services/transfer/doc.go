// Package transfer orchestrates whole-stream encode and decode around
// the pure codec: optional deflate compression, payload fingerprints and
// repair-report logging. Both ends of a transfer must be configured
// identically (width, group size, parity tag, compression) or decoding
// fails deterministically.
package transfer
