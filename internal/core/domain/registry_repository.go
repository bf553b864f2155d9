package domain

import "context"

// RegistryRepository gives access to the durable symbol registry. The
// mapping is a bijection kept in lockstep in both directions: every write
// either materializes a full entry or nothing at all.
type RegistryRepository interface {
	// AddEntry adds a single entry, failing with ErrDuplicateSymbol or
	// ErrDuplicateFeedID if either side of the pair is already bound.
	AddEntry(ctx context.Context, entry RegistryEntry) error
	// AddEntries adds a batch of entries atomically: if any entry fails
	// validation against the current state, none is persisted.
	AddEntries(ctx context.Context, entries []RegistryEntry) error
	// GetEntryBySymbol returns the entry bound to the given symbol, or
	// ErrSymbolNotFound.
	GetEntryBySymbol(ctx context.Context, symbol string) (*RegistryEntry, error)
	// GetEntryByFeedID returns the entry bound to the given feed
	// identifier, or ErrFeedIDNotFound.
	GetEntryByFeedID(ctx context.Context, feedID string) (*RegistryEntry, error)
	// GetAllEntries returns the whole registry.
	GetAllEntries(ctx context.Context) ([]RegistryEntry, error)
	Close()
}
