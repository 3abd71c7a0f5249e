// Package util provides the low-level primitives shared by the media catalog
// and its protocol layer.
//
// Key Components:
//
// Sorting:
//   - Sort: generic, comparator-driven, in-place partition-exchange sort
//   - Bounded recursion depth (MaxSortDepth) with insertion sort and heapsort fallbacks
//
// Transcoding:
//   - HexEncode / HexDecode: lowercase hex, lenient decoding that never fails
//   - URLEscape / URLUnescape: percent-encoding over the [0-9A-Za-z_-] unreserved set
//   - MD5Hex and friends: 32 character lowercase digests
//   - IDGenerator: best-effort unique identifiers from the clock and a seeded source
//
// Text:
//   - SplitString: separator tokenizer that never yields empty tokens
//   - TrimString: ASCII whitespace trimming
//
// Files and Paths:
//   - ReadWholeFile / WriteWholeFile: whole-file I/O reporting *IOError
//   - PathExists / CheckPath: existence and type checks, boolean and asserting forms
//
// Codec and text functions are total: malformed input is normalized rather
// than rejected. Nothing in this package logs.
package util
