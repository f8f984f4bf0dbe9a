package worker

import (
	"github.com/qmuntal/stateless"
)

// State is the lifecycle state of a loop.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateStopped State = "stopped"
)

const (
	triggerStart = "start"
	triggerStop  = "stop"
)

// loopState tracks Idle -> Running -> Stopped. A loop that is stopped
// before it starts goes straight from Idle to Stopped.
type loopState struct {
	fsm *stateless.StateMachine
}

func newLoopState() *loopState {
	fsm := stateless.NewStateMachine(StateIdle)
	fsm.Configure(StateIdle).
		Permit(triggerStart, StateRunning).
		Permit(triggerStop, StateStopped)

	fsm.Configure(StateRunning).
		Permit(triggerStop, StateStopped)

	fsm.Configure(StateStopped)

	return &loopState{fsm: fsm}
}

func (s *loopState) start() error {
	return s.fsm.Fire(triggerStart)
}

func (s *loopState) stop() {
	if ok, _ := s.fsm.CanFire(triggerStop); ok {
		_ = s.fsm.Fire(triggerStop)
	}
}

func (s *loopState) current() State {
	return s.fsm.MustState().(State)
}
