package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrJournalNotPublished is returned when a write was committed but its
	// changes could not be handed to the queue.
	ErrJournalNotPublished = errors.New("changes committed but not journaled")

	// ErrProfileUnavailable is returned when a write refers to a deleted or
	// locked profile.
	ErrProfileUnavailable = errors.New("profile is deleted or locked")

	// ErrCardUnavailable is returned when a subscription targets a deleted
	// or locked card.
	ErrCardUnavailable = errors.New("card is deleted or locked")
)
