// Package linearmap implements a generic hash map and hash set over
// open addressing with linear probing.
//
// The map is single-threaded and owns its entries. It uses randomised,
// per-instance seeded hashing, grows by doubling at a 3/4 load factor,
// and deletes without tombstones by repairing the probe chain in place
// (see the doc comment on Map.Pop). Callers that need
// concurrent access must serialise it themselves; see the sibling
// package linearmap/cache for one way to do that.
package linearmap
