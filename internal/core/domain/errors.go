package domain

import "errors"

var (
	// ErrArgumentLengthMismatch is thrown when the parallel symbol and feed
	// identifier sequences given at construction time differ in length.
	ErrArgumentLengthMismatch = errors.New(
		"symbols and feed identifiers must have the same length",
	)
	// ErrInvalidSymbol ...
	ErrInvalidSymbol = errors.New("symbol must not be empty")
	// ErrInvalidFeedID ...
	ErrInvalidFeedID = errors.New("invalid feed identifier")
	// ErrDuplicateSymbol is thrown when adding a symbol already bound to a
	// feed identifier.
	ErrDuplicateSymbol = errors.New("symbol is already registered")
	// ErrDuplicateFeedID is thrown when adding a feed identifier already
	// bound to a symbol.
	ErrDuplicateFeedID = errors.New("feed identifier is already registered")
	// ErrSymbolNotFound ...
	ErrSymbolNotFound = errors.New("symbol not found in registry")
	// ErrFeedIDNotFound ...
	ErrFeedIDNotFound = errors.New("feed identifier not found in registry")
)
