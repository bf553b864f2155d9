package application

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/ports"
	"github.com/oraclefeed-network/oraclefeed-daemon/pkg/pips"
)

// AdapterService is the public-facing price adapter. It resolves a symbol
// through the registry, reads the latest quote from the wired price source
// and normalizes it to canonical pips. Every call is self-contained: either
// a strictly positive price comes back or a typed failure, never a
// best-effort value.
type AdapterService struct {
	registry       domain.RegistryRepository
	source         ports.PriceSource
	admin          ports.AdminChecker
	validateFeedID domain.FeedIDValidator
}

// NewAdapterService builds the adapter on top of its three collaborators.
func NewAdapterService(
	registry domain.RegistryRepository,
	source ports.PriceSource,
	admin ports.AdminChecker,
	validateFeedID domain.FeedIDValidator,
) *AdapterService {
	return &AdapterService{
		registry:       registry,
		source:         source,
		admin:          admin,
		validateFeedID: validateFeedID,
	}
}

// BootstrapRegistry populates the registry from parallel symbol and feed
// identifier sequences, all entries in one atomic batch. Any invalid entry
// aborts the whole operation before anything is persisted.
func (s *AdapterService) BootstrapRegistry(
	ctx context.Context, symbols, feedIDs []string,
) error {
	if len(symbols) != len(feedIDs) {
		return domain.ErrArgumentLengthMismatch
	}

	entries := make([]domain.RegistryEntry, 0, len(symbols))
	for i, symbol := range symbols {
		entry, err := domain.NewRegistryEntry(symbol, feedIDs[i], s.validateFeedID)
		if err != nil {
			return err
		}
		entries = append(entries, *entry)
	}

	return s.registry.AddEntries(ctx, entries)
}

// LoadPrice returns the canonical pip price for the given symbol.
func (s *AdapterService) LoadPrice(
	ctx context.Context, symbol string,
) (uint64, error) {
	entry, err := s.registry.GetEntryBySymbol(ctx, symbol)
	if err != nil {
		return 0, err
	}

	quote, err := s.source.FetchQuote(ctx, entry.FeedID)
	if err != nil {
		return 0, err
	}

	price, err := pips.Normalize(quote.Magnitude, quote.Exponent)
	if err != nil {
		return 0, err
	}
	if price == 0 {
		return 0, ErrZeroPrice
	}

	return price, nil
}

// AddSymbolAndFeedID registers a new symbol binding. Only the administrator
// may call it; the registry itself rejects any duplicate on either side.
func (s *AdapterService) AddSymbolAndFeedID(
	ctx context.Context, caller, symbol, feedID string,
) error {
	if !s.admin.IsAdmin(caller) {
		return ErrUnauthorized
	}

	entry, err := domain.NewRegistryEntry(symbol, feedID, s.validateFeedID)
	if err != nil {
		return err
	}

	if err := s.registry.AddEntry(ctx, *entry); err != nil {
		return err
	}

	log.WithField("symbol", symbol).WithField("feed_id", feedID).
		Info("registered new symbol")
	return nil
}

// SetActive acknowledges that the consumer marked this adapter as its
// authoritative price source. Stateless adapters have nothing to
// initialize, so this is a pure acknowledgment; the method exists so that
// stateful adapters can be substituted without changing the calling
// contract.
func (s *AdapterService) SetActive(ctx context.Context, consumerRef string) {
	log.WithField("consumer", consumerRef).
		Info("adapter activated as authoritative price source")
}

// GetFeedID resolves a symbol to its feed identifier.
func (s *AdapterService) GetFeedID(
	ctx context.Context, symbol string,
) (string, error) {
	entry, err := s.registry.GetEntryBySymbol(ctx, symbol)
	if err != nil {
		return "", err
	}
	return entry.FeedID, nil
}

// GetSymbol resolves a feed identifier back to its symbol.
func (s *AdapterService) GetSymbol(
	ctx context.Context, feedID string,
) (string, error) {
	entry, err := s.registry.GetEntryByFeedID(ctx, feedID)
	if err != nil {
		return "", err
	}
	return entry.Symbol, nil
}

// ListEntries exposes the full registry for inspection.
func (s *AdapterService) ListEntries(
	ctx context.Context,
) ([]domain.RegistryEntry, error) {
	return s.registry.GetAllEntries(ctx)
}

// SourceName returns the provider shape this adapter is wired to.
func (s *AdapterService) SourceName() string {
	return s.source.Name()
}
