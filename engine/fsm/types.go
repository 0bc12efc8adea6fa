package fsm

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = -1

// EventID identifies an external trigger
type EventID int

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards (e.g., *game.Session)
type Machine[T any] struct {
	// Graph Data (Immutable after Init)
	nodes map[StateID]*Node[T]

	// Runtime State
	activeStateID StateID

	// OnTransition observes every completed transition
	OnTransition func(from, to StateID, ev EventID)
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order, the first passing guard wins
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventID
	Guard    GuardFunc[T] // nil = Always true
	Action   ActionFunc[T]
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
