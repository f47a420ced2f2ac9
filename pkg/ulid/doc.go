// Package ulid implements Universally Unique Lexicographically
// Sortable Identifiers.
//
// # Format
//
// A ULID is a 128-bit value stored as 16 bytes big-endian: the first
// 6 bytes hold a 48-bit millisecond Unix timestamp, the remaining 10
// bytes hold 80 bits of randomness. Byte-wise comparison therefore
// preserves chronological order, with randomness breaking ties.
//
// The canonical text form is 26 characters of Crockford base32
// (digits 0-9 and the uppercase letters excluding I, L, O and U),
// most significant symbol first. Because the symbol
// order matches the numeric digit order, lexicographic comparison of
// two encoded values agrees with comparison of the underlying
// 128-bit integers. Encoding always emits uppercase; decoding accepts
// both cases.
//
// # Generation
//
// A Generator owns an injectable clock and entropy source. New draws
// fresh randomness on every call and makes no ordering promise within
// one millisecond. NewMonotonic serializes callers and increments the
// previously issued randomness whenever the clock has not advanced,
// producing a strictly increasing sequence at the cost of timestamp
// accuracy when the clock steps backwards.
package ulid
