// Package buf contains helpers for endian-safe decoding routines.
package buf

import "encoding/binary"

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// I32LE reads a little-endian int32 from b. Returns 0 when b is too short.
func I32LE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// I64LE reads a little-endian int64 from b. Returns 0 when b is too short.
func I64LE(b []byte) int64 {
	if len(b) < 8 {
		return 0
	}
	return int64(binary.LittleEndian.Uint64(b))
}

// PutU32LE appends the little-endian encoding of v to b.
func PutU32LE(b []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(b, tmp[:]...)
}

// PutU64LE appends the little-endian encoding of v to b.
func PutU64LE(b []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(b, tmp[:]...)
}

// PutI32LE appends the little-endian two's-complement encoding of v to b.
func PutI32LE(b []byte, v int32) []byte {
	return PutU32LE(b, uint32(v))
}

// PutI64LE appends the little-endian two's-complement encoding of v to b.
func PutI64LE(b []byte, v int64) []byte {
	return PutU64LE(b, uint64(v))
}
