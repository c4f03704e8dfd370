// Package codec implements the transcript transforms.
//
// Encode turns raw bytes into printable, checksummed lines: the input is
// base-32 encoded, split into fixed-width chunks, and every run of
// GroupSize chunks is followed by one XOR parity line covering that run.
// Decode is the exact inverse and additionally repairs at most one
// damaged or missing data line per group using the parity line.
//
// Parity is computed symbol-wise over the 5-bit base-32 values rather
// than over the per-chunk decoded bytes. Chunk boundaries are not byte
// aligned (width*5 bits is rarely a multiple of 8), so byte-level parity
// would drop the bits a boundary splits; symbol-level parity keeps
// repairs bit-exact while the decoded-byte XOR relation still holds.
package codec
