// Package cmd provides the command-line interface implementation for mtkit.
//
// It uses the Cobra library for command structure; main runs the root command
// through Fang for styled help and errors.
//
// The package is organized into the following commands:
//   - root: flag parsing, configuration loading and logger setup (app.go)
//   - hex, url, digest, id: transcoding and identifiers (codec.go)
//   - split, trim, sort: text helpers (text.go)
//   - check: path existence checks (check.go)
//   - store: put, get, ls and stats on the object store (store.go)
//   - protocol-info, hms, redirect: protocol strings (protocol.go)
//   - version: build information (version.go)
//
// Each command has its own constructor returning a *cobra.Command. The
// constructors share an *app, which the root command's PersistentPreRunE
// fills in from --config, --store and --verbose before any RunE executes.
package cmd
