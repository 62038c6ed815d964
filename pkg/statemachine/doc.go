// Package statemachine provides a small finite-state-machine engine and the
// Lifecycle machine built on top of it.
//
// # Engine
//
// The engine revolves around two minimal interfaces, State and Event, both
// identified by Name. SimpleStateMachine keeps a transition table indexed as
// map[from][event][]Transition and handles:
//  1. Transition lookup for the current state and fired event
//  2. Guard evaluation; the first candidate whose guards all pass wins
//  3. Actions, run in order before the state changes; an error aborts
//
// Machines are configured with functional options:
//
//	const (
//	    Queued     = statemachine.StringState("queued")
//	    Processing = statemachine.StringState("processing")
//	    Pick       = statemachine.StringEvent("pick")
//	)
//
//	m := statemachine.MustNew(Queued,
//	    statemachine.WithTransition(Queued, Processing, Pick),
//	)
//	err := m.Fire(ctx, Pick, nil)
//
// Fire distinguishes "no transition defined" from "every guard said no":
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
//
// # Lifecycle
//
// Lifecycle models a start/pause/stop/reset component:
//
//	l := statemachine.NewLifecycle(statemachine.WithLogger(log))
//	if res := l.Start(ctx); res.IsErr() {
//	    return res.UnwrapErr() // invalid input: Cannot start from current state: ...
//	}
//
// Start (from Idle or Stopped) and Pause (from Running) are guarded and return
// an apperror InvalidInput error otherwise, leaving the state unchanged. Stop
// and Reset are accepted from every state and never fail. Every operation
// returns a variant.Outcome so callers handle both variants explicitly.
//
// # Concurrency
//
// SimpleStateMachine guards its table and current state with a RWMutex, so a
// machine shared by mistake stays memory-safe. The intended model is still one
// owner per machine; hand it off rather than sharing it.
//
// DOT renders any machine's transition table as Graphviz source.
package statemachine
