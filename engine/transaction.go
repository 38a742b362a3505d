package engine

import (
	"github.com/lixenwraith/planet-sim/core"
)

// OperationType represents the type of pending lifecycle operation
type OperationType int

const (
	// OpSpawn adds a body to the live set at commit
	OpSpawn OperationType = iota
	// OpDestroy removes a body from the live set at commit
	OpDestroy
)

// LifecycleOperation represents a pending change to the body set
type LifecycleOperation struct {
	Type OperationType
	ID   core.BodyID
	Body *core.Body // Set for OpSpawn
}

// LifecycleTransaction collects removals and additions during a tick
// The live slice is never modified until Commit, so index-based scans stay valid
type LifecycleTransaction struct {
	operations []LifecycleOperation
	destroyed  map[core.BodyID]struct{}
}

func newLifecycleTransaction() *LifecycleTransaction {
	return &LifecycleTransaction{
		operations: make([]LifecycleOperation, 0, 8),
		destroyed:  make(map[core.BodyID]struct{}),
	}
}

// Reset clears pending operations, retaining capacity
func (tx *LifecycleTransaction) Reset() {
	tx.operations = tx.operations[:0]
	clear(tx.destroyed)
}

// Destroy marks a body removed; returns false if it was already marked this tick
func (tx *LifecycleTransaction) Destroy(id core.BodyID) bool {
	if _, ok := tx.destroyed[id]; ok {
		return false
	}
	tx.destroyed[id] = struct{}{}
	tx.operations = append(tx.operations, LifecycleOperation{Type: OpDestroy, ID: id})
	return true
}

// Spawn queues a registered body for insertion
func (tx *LifecycleTransaction) Spawn(b *core.Body) {
	tx.operations = append(tx.operations, LifecycleOperation{Type: OpSpawn, ID: b.ID, Body: b})
}

// IsDestroyed reports whether a body was removed earlier in this tick
func (tx *LifecycleTransaction) IsDestroyed(id core.BodyID) bool {
	_, ok := tx.destroyed[id]
	return ok
}

// Pending returns the number of queued operations
func (tx *LifecycleTransaction) Pending() int {
	return len(tx.operations)
}

// Commit applies all operations to live: destroyed bodies are filtered in order, spawned bodies appended
func (tx *LifecycleTransaction) Commit(live []*core.Body) []*core.Body {
	if tx.Pending() == 0 {
		return live
	}

	kept := live[:0]
	for _, b := range live {
		if !tx.IsDestroyed(b.ID) {
			kept = append(kept, b)
		}
	}
	// Clear the tail so dropped bodies can be collected
	for i := len(kept); i < len(live); i++ {
		live[i] = nil
	}

	for _, op := range tx.operations {
		if op.Type == OpSpawn && !tx.IsDestroyed(op.ID) {
			kept = append(kept, op.Body)
		}
	}

	tx.Reset()
	return kept
}
