package errors

import "errors"

var (
	ErrInvalidChoice  = errors.New("input does not match any option at this node")
	ErrNodeNotFound   = errors.New("node was not found")
	ErrEndingNotFound = errors.New("ending was not found")
	ErrNoTransition   = errors.New("node has no transition for token")
	ErrUnreachable    = errors.New("node is not reachable from start")
	ErrInputClosed    = errors.New("input closed before an ending was reached")
	ErrSessionOver    = errors.New("session already reached an ending")
)
