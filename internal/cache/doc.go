// Package cache persists transform results in SQLite.
//
// Entries are content-addressed: the key hashes the source text together
// with the output-affecting configuration, so a hit is always valid and
// entries are written once and never updated. Runs record which files a
// batch transform touched and whether each came from the cache.
package cache
