// Package repository implements the in-memory entity tables behind the
// treasury API. Each repository owns one table: a map keyed by generated
// UUID plus an insertion-order index, guarded by a single RWMutex so that
// status updates are atomic with respect to other writers. Lookups signal
// absence with a nil record and nil error; handlers translate that to 404.
//
// Non-user tables are populated from fixture literals at construction, so
// a freshly built repository is a fully seeded, isolated store. Tests get
// clean state by constructing a new one.
package repository
