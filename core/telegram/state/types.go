package state

import tele "gopkg.in/telebot.v4"

// State identifies a finite-state-machine step used in conversations.
type State string

const (
	// StateIdle indicates there is no active conversation with the user.
	StateIdle State = "idle"
)

// Manager orchestrates per-user FSM states and dispatches free-text
// input to the handler registered for the current state.
type Manager interface {
	SetState(userID int64, st State)
	GetState(userID int64) State
	Clear(userID int64)

	InProgress(userID int64) bool
	RegisterHandler(st State, h tele.HandlerFunc)
	ManagerHandler(c tele.Context) error
}
