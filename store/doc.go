// Package store is the flat-file persistence layer of the media catalog.
//
// Objects are addressed by the MD5 of their contents and spread across 1000
// bucket directories. A JSON manifest at the store root records every name
// an object was stored under, so the latest version of a name can be found
// again and the history can be collapsed or summarized.
//
// A Store is safe for use by multiple goroutines within one process. It
// does no cross-process locking.
package store
