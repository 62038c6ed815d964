package statemachine

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/typekit/pkg/apperror"
	"github.com/dmitrymomot/typekit/pkg/logger"
	"github.com/dmitrymomot/typekit/pkg/variant"
)

// LifecycleState is one of the four states of a Lifecycle.
type LifecycleState uint8

const (
	Idle LifecycleState = iota
	Running
	Paused
	Stopped
)

var lifecycleStates = []State{Idle, Running, Paused, Stopped}

// String returns the lowercase state name.
func (s LifecycleState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Name implements State.
func (s LifecycleState) Name() string {
	return s.String()
}

// Lifecycle events.
const (
	EventStart = StringEvent("start")
	EventPause = StringEvent("pause")
	EventStop  = StringEvent("stop")
	EventReset = StringEvent("reset")
)

const (
	msgCannotStart = "Cannot start from current state"
	msgCannotPause = "Cannot pause from current state"
)

// Resettable is implemented by anything that can be returned to its initial state.
type Resettable interface {
	Reset(ctx context.Context) variant.Outcome[variant.Unit, error]
}

// Lifecycle is a start/pause/stop/reset state machine.
//
//	start: idle|stopped -> running
//	pause: running      -> paused
//	stop:  any          -> stopped
//	reset: any          -> idle
//
// Start and Pause are guarded and fail with an InvalidInput error from any
// other state, leaving the state unchanged. Stop and Reset always succeed.
type Lifecycle struct {
	id      uuid.UUID
	machine *SimpleStateMachine
	hooks   []Action
	log     *slog.Logger
}

var _ Resettable = (*Lifecycle)(nil)

// NewLifecycle returns a Lifecycle in the Idle state.
func NewLifecycle(opts ...LifecycleOption) *Lifecycle {
	cfg := &lifecycleConfig{log: logger.Discard()}
	for _, opt := range opts {
		opt(cfg)
	}

	l := &Lifecycle{
		id:  cfg.id,
		log: cfg.log.With(logger.Component("lifecycle")),
	}
	if l.id == uuid.Nil {
		l.id = uuid.New()
	}
	l.log = l.log.With(logger.MachineID(l.id.String()))

	l.hooks = cfg.hooks
	l.machine = MustNew(Idle,
		WithTransitionsFrom([]State{Idle, Stopped}, Running, EventStart),
		WithTransition(Running, Paused, EventPause),
		WithTransitionsFrom(lifecycleStates, Stopped, EventStop),
		WithTransitionsFrom(lifecycleStates, Idle, EventReset),
	)

	return l
}

// ID returns the instance ID used in log records.
func (l *Lifecycle) ID() uuid.UUID {
	return l.id
}

// State returns the current state.
func (l *Lifecycle) State() LifecycleState {
	return l.machine.Current().(LifecycleState)
}

// Can reports whether event would be accepted in the current state.
func (l *Lifecycle) Can(ctx context.Context, event Event) bool {
	return l.machine.CanFire(ctx, event, nil)
}

// Start moves to Running from Idle or Stopped.
func (l *Lifecycle) Start(ctx context.Context) variant.Outcome[variant.Unit, error] {
	return l.fire(ctx, EventStart, msgCannotStart, true)
}

// Pause moves to Paused from Running.
func (l *Lifecycle) Pause(ctx context.Context) variant.Outcome[variant.Unit, error] {
	return l.fire(ctx, EventPause, msgCannotPause, true)
}

// Stop moves to Stopped from any state.
func (l *Lifecycle) Stop(ctx context.Context) variant.Outcome[variant.Unit, error] {
	return l.fire(ctx, EventStop, "", false)
}

// Reset moves to Idle from any state.
func (l *Lifecycle) Reset(ctx context.Context) variant.Outcome[variant.Unit, error] {
	return l.fire(ctx, EventReset, "", false)
}

// DOT renders the lifecycle graph with the current state highlighted.
func (l *Lifecycle) DOT() string {
	return DOT("lifecycle", l.machine, l.State())
}

// fire resolves the target under the engine's read lock, runs hooks with no
// lock held, then commits. Hooks may therefore call back into the Lifecycle.
// When vetoable is false a hook error is logged and the transition proceeds.
func (l *Lifecycle) fire(ctx context.Context, event Event, rejectMsg string, vetoable bool) variant.Outcome[variant.Unit, error] {
	from := l.State()

	to, err := l.machine.Next(ctx, event, nil)
	if err != nil {
		return l.reject(ctx, event, from, rejectMsg, err)
	}

	for _, hook := range l.hooks {
		err := hook(ctx, from, to, event, nil)
		if err == nil {
			continue
		}
		if !vetoable {
			l.log.ErrorContext(ctx, "transition hook failed",
				logger.Event(event.Name()),
				logger.Transition(from.Name(), to.Name()),
				logger.Error(err),
			)
			continue
		}
		l.log.WarnContext(ctx, "transition aborted by hook",
			logger.Event(event.Name()),
			logger.State(from.Name()),
			logger.Error(err),
		)
		return variant.Err[variant.Unit](error(apperror.Wrap(apperror.KindIO, "transition hook failed", err)))
	}

	// A hook may have moved the machine; the commit resolves against the live state.
	if err := l.machine.Fire(ctx, event, nil); err != nil {
		return l.reject(ctx, event, l.State(), rejectMsg, err)
	}

	l.log.DebugContext(ctx, "transition",
		logger.Event(event.Name()),
		logger.Transition(from.Name(), l.State().Name()),
	)
	return variant.Done[error]()
}

func (l *Lifecycle) reject(ctx context.Context, event Event, from LifecycleState, msg string, err error) variant.Outcome[variant.Unit, error] {
	l.log.InfoContext(ctx, "transition rejected",
		logger.Event(event.Name()),
		logger.State(from.Name()),
	)
	return variant.Err[variant.Unit](error(apperror.Wrap(apperror.KindInvalidInput, msg, err)))
}
