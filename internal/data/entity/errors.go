package entity

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrUsernameTaken = errors.New("username is already taken")
	ErrInvalidEvent  = errors.New("invalid event")
)

var (
	ErrNoSpotsAvailable   = errors.New("no spots available")
	ErrAlreadyBooked      = errors.New("user already has an active booking for this event")
	ErrBookingNotPending  = errors.New("booking is not in pending status")
	ErrBookingExpired     = errors.New("booking confirmation window has expired")
	ErrConfirmNotRequired = errors.New("event does not require confirmation")
)
