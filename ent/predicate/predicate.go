// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Card is the predicate function for card builders.
type Card func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Execution is the predicate function for execution builders.
type Execution func(*sql.Selector)

// ExecutionLog is the predicate function for executionlog builders.
type ExecutionLog func(*sql.Selector)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// MemoryEntry is the predicate function for memoryentry builders.
type MemoryEntry func(*sql.Selector)

// OrchestratorAction is the predicate function for orchestratoraction builders.
type OrchestratorAction func(*sql.Selector)

// OrchestratorLog is the predicate function for orchestratorlog builders.
type OrchestratorLog func(*sql.Selector)
