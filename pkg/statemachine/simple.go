package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// SimpleStateMachine is an in-memory state machine.
// Transitions are indexed as [fromState][event][]Transition.
type SimpleStateMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string][]Transition
	table        []Transition // registration order
	mu           sync.RWMutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
	}
}

// Current returns the current state.
func (sm *SimpleStateMachine) Current() State {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.currentState
}

// AddTransition registers a transition from one state to another on event.
func (sm *SimpleStateMachine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	fromName := from.Name()
	if _, ok := sm.transitions[fromName]; !ok {
		sm.transitions[fromName] = make(map[string][]Transition)
	}

	t := Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	}

	// Several transitions may share from/event; the first whose guards pass wins.
	sm.transitions[fromName][event.Name()] = append(sm.transitions[fromName][event.Name()], t)
	sm.table = append(sm.table, t)
	return nil
}

// Fire runs the first transition for event whose guards pass. Actions run in
// order under the write lock; the first action error aborts the transition.
func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	t, err := sm.resolve(ctx, event, data)
	if err != nil {
		return err
	}

	for _, action := range t.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, sm.currentState, t.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	return nil
}

// CanFire reports whether event would be accepted in the current state.
func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	_, err := sm.Next(ctx, event, data)
	return err == nil
}

// Next returns the state event would move to, without changing the current state
// or running actions. Guards are evaluated.
func (sm *SimpleStateMachine) Next(ctx context.Context, event Event, data any) (State, error) {
	if event == nil {
		return nil, ErrInvalidEvent
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	t, err := sm.resolve(ctx, event, data)
	if err != nil {
		return nil, err
	}
	return t.To, nil
}

// Transitions returns a copy of the transition table in registration order.
func (sm *SimpleStateMachine) Transitions() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	out := make([]Transition, len(sm.table))
	copy(out, sm.table)
	return out
}

// Reset returns the machine to its initial state.
func (sm *SimpleStateMachine) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
	return nil
}

// resolve picks the first transition for event whose guards all pass.
// Callers must hold sm.mu.
func (sm *SimpleStateMachine) resolve(ctx context.Context, event Event, data any) (*Transition, error) {
	stateName := sm.currentState.Name()
	eventName := event.Name()

	candidates := sm.transitions[stateName][eventName]
	if len(candidates) == 0 {
		return nil, NewErrNoTransitionAvailable(stateName, eventName)
	}

	for i := range candidates {
		if guardsPass(ctx, candidates[i].Guards, sm.currentState, event, data) {
			return &candidates[i], nil
		}
	}

	return nil, NewErrTransitionRejected(stateName, eventName)
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, guard := range guards {
		if guard != nil && !guard(ctx, from, event, data) {
			return false
		}
	}
	return true
}
