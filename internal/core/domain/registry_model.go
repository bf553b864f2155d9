package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	aggregatorFeedIDRegexp = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	opaqueFeedIDRegexp     = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{64}$`)
)

// RegistryEntry binds a human-readable symbol to the opaque identifier of
// one upstream price feed. Entries are immutable once created: the registry
// supports neither update nor removal, and both sides of the binding are
// unique across the whole registry.
type RegistryEntry struct {
	ID     string
	Symbol string
	FeedID string
}

// FeedIDValidator reports whether a feed identifier is a well-formed,
// non-zero handle for the provider shape the adapter is wired to.
type FeedIDValidator func(feedID string) error

// NewRegistryEntry validates the pair and returns a new entry ready to be
// persisted.
func NewRegistryEntry(
	symbol, feedID string, validateFeedID FeedIDValidator,
) (*RegistryEntry, error) {
	if symbol == "" {
		return nil, ErrInvalidSymbol
	}
	if err := validateFeedID(feedID); err != nil {
		return nil, err
	}

	return &RegistryEntry{
		ID:     uuid.New().String(),
		Symbol: symbol,
		FeedID: feedID,
	}, nil
}

// ValidateAggregatorFeedID accepts a 20-byte hex address prefixed with 0x,
// rejecting the zero address.
func ValidateAggregatorFeedID(feedID string) error {
	if !aggregatorFeedIDRegexp.MatchString(feedID) {
		return fmt.Errorf(
			"%w: %s, must be a 0x-prefixed 20-byte hex address", ErrInvalidFeedID, feedID,
		)
	}
	if isZeroHex(feedID) {
		return fmt.Errorf("%w: zero address", ErrInvalidFeedID)
	}
	return nil
}

// ValidateOpaqueFeedID accepts a 32-byte hex identifier, with or without a
// 0x prefix, rejecting the all-zero identifier.
func ValidateOpaqueFeedID(feedID string) error {
	if !opaqueFeedIDRegexp.MatchString(feedID) {
		return fmt.Errorf(
			"%w: %s, must be a 32-byte hex identifier", ErrInvalidFeedID, feedID,
		)
	}
	if isZeroHex(feedID) {
		return fmt.Errorf("%w: zero identifier", ErrInvalidFeedID)
	}
	return nil
}

func isZeroHex(s string) bool {
	s = strings.TrimPrefix(s, "0x")
	return strings.Trim(s, "0") == ""
}
