package statemachine

import (
	"fmt"
)

// Option configures a state machine during construction.
type Option func(*SimpleStateMachine) error

// TransitionOption configures a single transition with guards and actions.
type TransitionOption func(*transitionConfig)

// TransitionDef defines a transition between states.
type TransitionDef struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

type transitionConfig struct {
	guards  []Guard
	actions []Action
}

func newTransitionConfig(opts []TransitionOption) *transitionConfig {
	cfg := &transitionConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// New creates a state machine in initialState and applies opts in order.
func New(initialState State, opts ...Option) (*SimpleStateMachine, error) {
	if initialState == nil {
		return nil, ErrNilInitialState
	}

	sm := newSimpleStateMachine(initialState)
	for _, opt := range opts {
		if err := opt(sm); err != nil {
			return nil, err
		}
	}

	return sm, nil
}

// MustNew is like New but panics when an option fails.
func MustNew(initialState State, opts ...Option) *SimpleStateMachine {
	sm, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return sm
}

// WithTransition adds a single transition.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(sm *SimpleStateMachine) error {
		cfg := newTransitionConfig(opts)
		return sm.AddTransition(from, to, event, cfg.guards, cfg.actions)
	}
}

// WithTransitionsFrom registers the same event and target for every state in froms.
// It is the way to declare transitions that are legal from any state.
func WithTransitionsFrom(froms []State, to State, event Event, opts ...TransitionOption) Option {
	return func(sm *SimpleStateMachine) error {
		if len(froms) == 0 {
			return ErrInvalidTransition
		}
		cfg := newTransitionConfig(opts)
		for _, from := range froms {
			if err := sm.AddTransition(from, to, event, cfg.guards, cfg.actions); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithTransitions adds multiple transitions at once.
func WithTransitions(transitions []TransitionDef) Option {
	return func(sm *SimpleStateMachine) error {
		for i, t := range transitions {
			if err := sm.AddTransition(t.From, t.To, t.Event, t.Guards, t.Actions); err != nil {
				return fmt.Errorf("failed to add transition[%d] %s->%s on %s: %w",
					i, nameOf(t.From), nameOf(t.To), nameOf(t.Event), err)
			}
		}
		return nil
	}
}

func nameOf(n interface{ Name() string }) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name()
}

// WithGuard adds a guard to a transition. Nil guards are ignored.
func WithGuard(guard Guard) TransitionOption {
	return WithGuards(guard)
}

// WithGuards adds several guards to a transition.
func WithGuards(guards ...Guard) TransitionOption {
	return func(cfg *transitionConfig) {
		for _, guard := range guards {
			if guard != nil {
				cfg.guards = append(cfg.guards, guard)
			}
		}
	}
}

// WithAction adds an action to a transition. Nil actions are ignored.
func WithAction(action Action) TransitionOption {
	return WithActions(action)
}

// WithActions adds several actions to a transition.
func WithActions(actions ...Action) TransitionOption {
	return func(cfg *transitionConfig) {
		for _, action := range actions {
			if action != nil {
				cfg.actions = append(cfg.actions, action)
			}
		}
	}
}
