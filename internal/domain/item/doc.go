// Package item implements the in-memory item store.
//
// Items are created and read, never updated or deleted. Ids come from a
// counter that starts at 1 and only moves forward, so an id is never reused
// while the process runs. All state is lost on restart.
package item
