// Package version reports build metadata for mtkit.
//
// Values come from, in order of preference:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Development defaults
//
// Release builds set them with:
//
//	-ldflags "-X github.com/mediacat/mtkit/version.Version=v1.0.0 -X github.com/mediacat/mtkit/version.Commit=abc123 -X github.com/mediacat/mtkit/version.Date=2026-01-01T00:00:00Z"
//
// GetInfo feeds both `mtkit version` and the Version field of store stats.
package version
