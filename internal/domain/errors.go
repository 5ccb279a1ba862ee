package domain

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrRecordNotFound     = errors.New("record not found")
	ErrEditConflict       = errors.New("edit conflict")
	ErrSeatAlreadyBooked  = errors.New("seat(s) are already booked for this showtime")
	ErrAlreadyCancelled   = errors.New("booking is not active")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPaymentDeclined    = errors.New("payment was declined")
)
