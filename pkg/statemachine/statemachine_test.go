package statemachine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/typekit/pkg/statemachine"
)

const (
	Queued     = statemachine.StringState("queued")
	Processing = statemachine.StringState("processing")
	Done       = statemachine.StringState("done")
	Failed     = statemachine.StringState("failed")

	Pick    = statemachine.StringEvent("pick")
	Finish  = statemachine.StringEvent("finish")
	Fail    = statemachine.StringEvent("fail")
	Requeue = statemachine.StringEvent("requeue")
)

func TestStateMachine_BasicTransitions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sm := statemachine.MustNew(Queued,
		statemachine.WithTransition(Queued, Processing, Pick),
		statemachine.WithTransition(Processing, Done, Finish),
	)
	assert.Equal(t, Queued, sm.Current())

	assert.True(t, sm.CanFire(ctx, Pick, nil))
	assert.False(t, sm.CanFire(ctx, Finish, nil))

	require.NoError(t, sm.Fire(ctx, Pick, nil))
	assert.Equal(t, Processing, sm.Current())

	require.NoError(t, sm.Fire(ctx, Finish, nil))
	assert.Equal(t, Done, sm.Current())

	require.NoError(t, sm.Reset())
	assert.Equal(t, Queued, sm.Current())
}

func TestStateMachine_NoTransition(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	sm := statemachine.MustNew(Queued, statemachine.WithTransition(Queued, Processing, Pick))

	err := sm.Fire(ctx, Finish, nil)
	require.Error(t, err)
	assert.True(t, statemachine.IsNoTransitionAvailableError(err))
	assert.False(t, statemachine.IsTransitionRejectedError(err))
	assert.EqualError(t, err, "no transition available from state 'queued' for event 'finish'")
	assert.Equal(t, Queued, sm.Current())

	assert.ErrorIs(t, sm.Fire(ctx, nil, nil), statemachine.ErrInvalidEvent)
	assert.False(t, sm.CanFire(ctx, nil, nil))
}

func TestStateMachine_Guards(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	hasWorker := func(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
		ok, _ := data.(bool)
		return ok
	}

	sm := statemachine.MustNew(Queued,
		statemachine.WithTransition(Queued, Processing, Pick, statemachine.WithGuard(hasWorker)),
	)

	assert.False(t, sm.CanFire(ctx, Pick, false))
	err := sm.Fire(ctx, Pick, false)
	assert.True(t, statemachine.IsTransitionRejectedError(err))
	assert.Equal(t, Queued, sm.Current())

	assert.True(t, sm.CanFire(ctx, Pick, true))
	require.NoError(t, sm.Fire(ctx, Pick, true))
	assert.Equal(t, Processing, sm.Current())
}

func TestStateMachine_GuardBranching(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	isError := func(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
		_, ok := data.(error)
		return ok
	}

	sm := statemachine.MustNew(Processing,
		statemachine.WithTransition(Processing, Failed, Finish, statemachine.WithGuard(isError)),
		statemachine.WithTransition(Processing, Done, Finish),
	)

	require.NoError(t, sm.Fire(ctx, Finish, errors.New("crash")))
	assert.Equal(t, Failed, sm.Current())

	require.NoError(t, sm.Reset())
	require.NoError(t, sm.Fire(ctx, Finish, "ok"))
	assert.Equal(t, Done, sm.Current())
}

func TestStateMachine_Actions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var log []string
	record := func(_ context.Context, from, to statemachine.State, event statemachine.Event, _ any) error {
		log = append(log, from.Name()+"-"+event.Name()+"->"+to.Name())
		return nil
	}
	boom := func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
		return errors.New("boom")
	}

	sm := statemachine.MustNew(Queued,
		statemachine.WithTransition(Queued, Processing, Pick, statemachine.WithActions(record, nil, record)),
		statemachine.WithTransition(Processing, Failed, Fail, statemachine.WithAction(boom)),
	)

	require.NoError(t, sm.Fire(ctx, Pick, nil))
	assert.Equal(t, []string{"queued-pick->processing", "queued-pick->processing"}, log)

	err := sm.Fire(ctx, Fail, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "action failed")
	assert.Equal(t, Processing, sm.Current(), "failed action must not change state")
}

func TestStateMachine_WithTransitionsFrom(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	all := []statemachine.State{Queued, Processing, Done, Failed}
	sm := statemachine.MustNew(Done,
		statemachine.WithTransitionsFrom(all, Queued, Requeue),
	)

	for _, from := range all {
		sm2 := statemachine.MustNew(from, statemachine.WithTransitionsFrom(all, Queued, Requeue))
		require.NoError(t, sm2.Fire(ctx, Requeue, nil))
		assert.Equal(t, Queued, sm2.Current())
	}
	assert.Len(t, sm.Transitions(), 4)

	_, err := statemachine.New(Queued, statemachine.WithTransitionsFrom(nil, Queued, Requeue))
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
}

func TestStateMachine_WithTransitions(t *testing.T) {
	t.Parallel()

	sm, err := statemachine.New(Queued, statemachine.WithTransitions([]statemachine.TransitionDef{
		{From: Queued, To: Processing, Event: Pick},
		{From: Processing, To: Done, Event: Finish},
	}))
	require.NoError(t, err)
	require.Len(t, sm.Transitions(), 2)
	assert.Equal(t, Pick, sm.Transitions()[0].Event)

	_, err = statemachine.New(Queued, statemachine.WithTransitions([]statemachine.TransitionDef{
		{From: Queued, To: Processing, Event: Pick},
		{From: Processing, To: nil, Event: Finish},
	}))
	require.Error(t, err)
	assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "transition[1] processing-><nil> on finish")
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	_, err := statemachine.New(nil)
	assert.ErrorIs(t, err, statemachine.ErrNilInitialState)

	assert.Panics(t, func() {
		statemachine.MustNew(Queued, statemachine.WithTransition(nil, Processing, Pick))
	})
}

func TestDOT(t *testing.T) {
	t.Parallel()

	guard := func(context.Context, statemachine.State, statemachine.Event, any) bool { return true }
	sm := statemachine.MustNew(Queued,
		statemachine.WithTransition(Queued, Processing, Pick),
		statemachine.WithTransition(Processing, Done, Finish, statemachine.WithGuard(guard)),
	)

	out := statemachine.DOT("jobs", sm, sm.Current())
	assert.Contains(t, out, `digraph "jobs" {`)
	assert.Contains(t, out, `"queued" [style="rounded,filled"];`)
	assert.Contains(t, out, `"processing";`)
	assert.Contains(t, out, `"queued" -> "processing" [label="pick"];`)
	assert.Contains(t, out, `"processing" -> "done" [label="finish [guarded]"];`)
}

func TestStateMachine_Next(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var ran bool
	sm := statemachine.MustNew(Queued,
		statemachine.WithTransition(Queued, Processing, Pick, statemachine.WithAction(
			func(context.Context, statemachine.State, statemachine.State, statemachine.Event, any) error {
				ran = true
				return nil
			},
		)),
	)

	to, err := sm.Next(ctx, Pick, nil)
	require.NoError(t, err)
	assert.Equal(t, Processing, to)
	assert.Equal(t, Queued, sm.Current())
	assert.False(t, ran)

	_, err = sm.Next(ctx, Finish, nil)
	assert.True(t, statemachine.IsNoTransitionAvailableError(err))

	_, err = sm.Next(ctx, nil, nil)
	assert.ErrorIs(t, err, statemachine.ErrInvalidEvent)
}
