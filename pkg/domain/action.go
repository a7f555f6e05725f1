package domain

import "context"

// ActionEvent is handed to a bound action when its transition fires.
type ActionEvent struct {
	// Action is the registered name that resolved to the running function.
	Action  string
	Command Command
	Region  Region
	From    StateValue
	To      StateValue

	// Snapshot is the machine state after the region moved.
	Snapshot Snapshot
}

// Action is a side effect bound to a transition.
// Actions run synchronously and cannot fail: a malformed request is absorbed.
type Action func(ctx context.Context, ev ActionEvent)
