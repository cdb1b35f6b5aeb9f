package soulmath

import "errors"

// Sentinel errors for the soulmath package.
var (
	ErrInvalidInput = errors.New("invalid day or month")
	ErrInvalidDate  = errors.New("invalid date")
)
