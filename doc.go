// Package main provides the mtkit command-line interface.
//
// mtkit wraps the primitives the media catalog is built on: hex and URL
// transcoding, MD5 digests and random identifiers, string splitting and
// trimming, whole-file I/O, path checks and a comparator-driven sort. It
// also manages a small content-addressed object store keyed by MD5.
//
// The main binary supports these subcommands:
//   - hex, url, digest, id: transcoding and identifier generation
//   - split, trim, sort: text utilities
//   - check: path existence and type checks
//   - store: put, get, ls and stats on the object store
//   - protocol-info, hms, redirect: protocol string helpers
//   - version: build information
package main
