// Package frame formats and parses individual transcript lines.
//
// A transcript line is fixed-width ASCII in one of two shapes:
//
//	NNNNNN <payload padded to width> <cccccccc>   data line
//	PGGGGG <payload padded to width> <cccccccc>   parity line
//
// where NNNNNN is the 1-based global chunk index, GGGGG the 0-based group
// index, and cccccccc the lowercase hex IEEE CRC-32 of the payload with
// trailing pad spaces trimmed. The payload alphabet is RFC 4648 base-32
// (A-Z, 2-7) with no '=' padding.
package frame
