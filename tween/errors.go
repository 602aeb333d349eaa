package tween

import "errors"

var (
	ErrNilHost     = errors.New("tween: host is nil")
	ErrInvalidHost = errors.New("tween: host cannot be used as a registry key")
	ErrNilTarget   = errors.New("tween: target is nil")
	ErrNilTween    = errors.New("tween: nil tween in chain")
	ErrChainCycle  = errors.New("tween: chain would loop back on itself")
	ErrNotStruct   = errors.New("tween: fields target must be a non-nil pointer to a struct")
)
