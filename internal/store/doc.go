// Package store defines the persistence interfaces for the application's
// entities and provides the in-memory implementations backing them.
//
// Persistence here is deliberately transient: records live in maps guarded
// by RWMutexes, and identifiers come from a monotonically increasing atomic
// counter. That counter is the only shared mutable state in the whole
// service.
package store
