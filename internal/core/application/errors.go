package application

import "errors"

var (
	// ErrUnauthorized is thrown when a non-admin caller attempts to mutate
	// the symbol registry.
	ErrUnauthorized = errors.New("caller is not the registry administrator")
	// ErrZeroPrice is thrown when a positive raw quote normalizes to
	// exactly zero pips. A zero price must never be reported downstream as
	// if it were valid.
	ErrZeroPrice = errors.New("normalized price is zero")
)
