package study

import "errors"

var (
	// ErrNoSession is returned by mutators that require a loaded session.
	ErrNoSession = errors.New("no study session loaded")

	// ErrStaleReference is returned when a mutation resolved after a newer
	// mutation had already superseded it; its result is discarded.
	ErrStaleReference = errors.New("stale study session mutation discarded")

	ErrInvalidReference = errors.New("invalid reference")
	ErrInvalidStage     = errors.New("invalid study stage")
	ErrEmptyNoteContent = errors.New("note content must not be empty")
)
