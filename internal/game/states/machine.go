package states

import (
	"fmt"
	"sync"
	"time"

	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
)

// State is one phase of the board lifecycle with its hooks.
type State interface {
	Phase() GamePhase
	// Validate is checked before entering; an error aborts the transition.
	Validate(ctx *GameContext) error
	Enter(ctx *GameContext) error
	// Exit errors are logged and do not abort the transition.
	Exit(ctx *GameContext) error
}

// Transition is one entry of the lifecycle history.
type Transition struct {
	From      GamePhase
	To        GamePhase
	Timestamp time.Time
	Reason    string
}

// StateMachine drives a board through its phases and records each step.
// Transition events are published while the machine is locked, so event
// handlers must not call back into it.
type StateMachine struct {
	mu           sync.RWMutex
	currentPhase GamePhase
	states       map[GamePhase]State
	context      *GameContext
	history      []Transition
	publisher    events.Publisher
}

// NewStateMachine starts in PhaseUninitialized. publisher may be nil.
func NewStateMachine(ctx *GameContext, publisher events.Publisher) *StateMachine {
	sm := &StateMachine{
		currentPhase: PhaseUninitialized,
		states:       make(map[GamePhase]State, 4),
		context:      ctx,
		history:      make([]Transition, 0, 2),
		publisher:    publisher,
	}

	for _, s := range []State{NewUninitializedState(), NewPlacedState(), NewWonState(), NewLostState()} {
		sm.RegisterState(s)
	}
	return sm
}

// RegisterState installs or replaces the implementation of a phase.
func (sm *StateMachine) RegisterState(state State) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.states[state.Phase()] = state
}

func (sm *StateMachine) CurrentPhase() GamePhase {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase
}

// TransitionTo moves to target if the phase graph allows it and the target
// state validates. On failure the machine stays where it was.
func (sm *StateMachine) TransitionTo(target GamePhase, reason string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	from := sm.currentPhase
	if !from.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", from, target)
	}

	next, ok := sm.states[target]
	if !ok {
		return fmt.Errorf("no state registered for phase %s", target)
	}
	if err := next.Validate(sm.context); err != nil {
		return fmt.Errorf("cannot enter %s: %w", target, err)
	}

	sm.leave(from, target)

	sm.currentPhase = target
	if err := next.Enter(sm.context); err != nil {
		sm.currentPhase = from
		return fmt.Errorf("failed to enter state %s: %w", target, err)
	}

	sm.record(from, target, reason)
	return nil
}

func (sm *StateMachine) leave(from, to GamePhase) {
	current, ok := sm.states[from]
	if !ok {
		return
	}
	if err := current.Exit(sm.context); err != nil {
		sm.context.Logger.Error().
			Err(err).
			Str("from_phase", from.String()).
			Str("to_phase", to.String()).
			Msg("Error exiting state")
	}
}

func (sm *StateMachine) record(from, to GamePhase, reason string) {
	sm.history = append(sm.history, Transition{
		From:      from,
		To:        to,
		Timestamp: time.Now(),
		Reason:    reason,
	})

	if sm.publisher != nil {
		sm.publisher.Publish(events.NewStateTransitionEvent(
			sm.context.GameID, from.String(), to.String(), reason,
		))
	}

	sm.context.Logger.Debug().
		Str("from_phase", from.String()).
		Str("to_phase", to.String()).
		Str("reason", reason).
		Msg("Phase changed")
}

// GetHistory returns a copy of the recorded transitions, oldest first.
func (sm *StateMachine) GetHistory() []Transition {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return append([]Transition(nil), sm.history...)
}

func (sm *StateMachine) GetContext() *GameContext {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.context
}

// CanTransitionTo reports whether the phase graph allows moving to target now.
func (sm *StateMachine) CanTransitionTo(target GamePhase) bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.currentPhase.CanTransitionTo(target)
}
