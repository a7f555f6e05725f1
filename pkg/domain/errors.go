package domain

import "errors"

// ErrUnknownMark is returned when a mark name cannot be resolved.
var ErrUnknownMark = errors.New("unknown mark")

// ErrUnknownBlockKind is returned when a block kind is not part of the closed set.
var ErrUnknownBlockKind = errors.New("unknown block kind")

// ErrUnknownAction is returned when a transition names an action that is not registered.
var ErrUnknownAction = errors.New("unknown action")

// ErrInvalidPath is returned when a textual document address cannot be resolved.
var ErrInvalidPath = errors.New("invalid path")
