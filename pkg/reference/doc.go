// Package reference answers "is code X valid in table T" for the validation
// engine.
//
// The engine only depends on the Lookup interface. This package provides the
// stores behind it:
//
//   - MemoryStore: maps in memory, preloaded with stages and knowledge areas
//     by NewDefaultMemoryStore
//   - sqlite.Store (subpackage): tables persisted in a SQLite file
//   - CachedLookup: TTL and LRU cache in front of a slower store
//   - Instrument: reports every lookup to a metrics observer
//
// Tables are seeded from YAML files with LoadSeedFile and Seed.Apply.
//
// A store that has no data for a table returns ErrTableNotLoaded; the engine
// skips those checks instead of rejecting every code.
package reference
