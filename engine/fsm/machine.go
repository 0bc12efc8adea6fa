package fsm

import (
	"fmt"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:         make(map[StateID]*Node[T]),
		activeStateID: StateNone,
	}
}

// AddState registers a node, re-adding an ID replaces its name only
func (m *Machine[T]) AddState(id StateID, name string) *Machine[T] {
	if n, ok := m.nodes[id]; ok {
		n.Name = name
		return m
	}
	m.nodes[id] = &Node[T]{ID: id, Name: name}
	return m
}

// AddTransition links from -> to on ev, guard and action may be nil
func (m *Machine[T]) AddTransition(from StateID, ev EventID, to StateID, guard GuardFunc[T], action ActionFunc[T]) error {
	node, ok := m.nodes[from]
	if !ok {
		return fmt.Errorf("transition source state %d not registered", from)
	}
	if _, ok := m.nodes[to]; !ok {
		return fmt.Errorf("transition target state %d not registered", to)
	}
	node.Transitions = append(node.Transitions, Transition[T]{
		TargetID: to,
		Event:    ev,
		Guard:    guard,
		Action:   action,
	})
	return nil
}

// OnEnter appends an action run whenever id becomes active
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) error {
	node, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("state %d not registered", id)
	}
	node.OnEnter = append(node.OnEnter, fn)
	return nil
}

// OnExit appends an action run whenever id is left
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) error {
	node, ok := m.nodes[id]
	if !ok {
		return fmt.Errorf("state %d not registered", id)
	}
	node.OnExit = append(node.OnExit, fn)
	return nil
}

// Init enters the initial state without running any transition action
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initial)
	}
	m.activeStateID = initial
	for _, fn := range node.OnEnter {
		fn(ctx)
	}
	return nil
}

// Active returns the current state
func (m *Machine[T]) Active() StateID {
	return m.activeStateID
}

// StateName returns the registered name of id
func (m *Machine[T]) StateName(id StateID) string {
	if n, ok := m.nodes[id]; ok {
		return n.Name
	}
	return fmt.Sprintf("state(%d)", id)
}

// Can reports whether ev would trigger a transition right now
func (m *Machine[T]) Can(ctx T, ev EventID) bool {
	_, ok := m.match(ctx, ev)
	return ok
}

// HandleEvent routes an external event through the active state
// Returns true if the event triggered a transition, unmatched events are no-ops
func (m *Machine[T]) HandleEvent(ctx T, ev EventID) bool {
	trans, ok := m.match(ctx, ev)
	if !ok {
		return false
	}
	m.transition(ctx, trans, ev)
	return true
}

func (m *Machine[T]) match(ctx T, ev EventID) (Transition[T], bool) {
	node, ok := m.nodes[m.activeStateID]
	if !ok {
		return Transition[T]{}, false
	}
	for _, trans := range node.Transitions {
		if trans.Event != ev {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx) {
			return trans, true
		}
	}
	return Transition[T]{}, false
}

// transition runs exit, transition action, then enter
func (m *Machine[T]) transition(ctx T, trans Transition[T], ev EventID) {
	from := m.activeStateID
	if node, ok := m.nodes[from]; ok {
		for _, fn := range node.OnExit {
			fn(ctx)
		}
	}

	if trans.Action != nil {
		trans.Action(ctx)
	}

	m.activeStateID = trans.TargetID
	for _, fn := range m.nodes[trans.TargetID].OnEnter {
		fn(ctx)
	}

	if m.OnTransition != nil {
		m.OnTransition(from, trans.TargetID, ev)
	}
}
