// Package flow implements the order conversation: main menu, plan
// selection, credential intake, the synthetic payment step and the
// operator-facing pieces (completed-order notification, /orders listing).
package flow

import "github.com/SummitSummer/zzxc/core/telegram/state"

// Conversation states of the order flow. Idle is state.StateIdle.
const (
	// StateChoosingSubscription: the plan keyboard is shown, waiting for select_plan.
	StateChoosingSubscription state.State = "choosing_subscription"
	// StateEnteringCredentials: waiting for a login:password message.
	StateEnteringCredentials state.State = "entering_credentials"
	// StateAwaitingPayment: payment link issued, waiting for payment_done.
	StateAwaitingPayment state.State = "awaiting_payment"
	// StateCompleted: order confirmed; only start_over leaves this state.
	StateCompleted state.State = "completed"
)
