package registrystore

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
)

func TestRegistryRepository(t *testing.T) {
	repo, err := NewRegistryRepository("", nil)
	require.NoError(t, err)
	t.Cleanup(repo.Close)

	// happy path
	t.Run("AddAndGetEntry", testAddAndGetEntry(repo))
	t.Run("AddEntries", testAddEntries(repo))
	t.Run("GetAllEntries", testGetAllEntries(repo))

	// check errors
	t.Run("GetEntryNotFound", testGetEntryNotFound(repo))
	t.Run("DuplicateSymbol", testDuplicateSymbol(repo))
	t.Run("DuplicateFeedID", testDuplicateFeedID(repo))
	t.Run("AddEntriesAllOrNothing", testAddEntriesAllOrNothing(repo))
}

func testAddAndGetEntry(repo domain.RegistryRepository) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()
		entry := newTestEntry("ETH")

		err := repo.AddEntry(ctx, entry)
		require.NoError(t, err)

		bySymbol, err := repo.GetEntryBySymbol(ctx, entry.Symbol)
		require.NoError(t, err)
		assert.Equal(t, entry.FeedID, bySymbol.FeedID)

		byFeedID, err := repo.GetEntryByFeedID(ctx, entry.FeedID)
		require.NoError(t, err)
		assert.Equal(t, entry.Symbol, byFeedID.Symbol)
		assert.Equal(t, bySymbol.ID, byFeedID.ID)
	}
}

func testAddEntries(repo domain.RegistryRepository) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()
		entries := []domain.RegistryEntry{
			newTestEntry("BTC"), newTestEntry("LTC"), newTestEntry("XRP"),
		}

		err := repo.AddEntries(ctx, entries)
		require.NoError(t, err)

		for _, entry := range entries {
			found, err := repo.GetEntryBySymbol(ctx, entry.Symbol)
			require.NoError(t, err)
			assert.Equal(t, entry.FeedID, found.FeedID)
		}
	}
}

func testGetAllEntries(repo domain.RegistryRepository) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()

		entries, err := repo.GetAllEntries(ctx)
		require.NoError(t, err)
		assert.True(t, len(entries) >= 4)
	}
}

func testGetEntryNotFound(repo domain.RegistryRepository) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()

		_, err := repo.GetEntryBySymbol(ctx, "UNKNOWN")
		require.ErrorIs(t, err, domain.ErrSymbolNotFound)

		_, err = repo.GetEntryByFeedID(ctx, newTestFeedID())
		require.ErrorIs(t, err, domain.ErrFeedIDNotFound)
	}
}

func testDuplicateSymbol(repo domain.RegistryRepository) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()
		entry := newTestEntry("SOL")

		err := repo.AddEntry(ctx, entry)
		require.NoError(t, err)

		// same symbol, different feed id
		dup := newTestEntry("SOL")
		err = repo.AddEntry(ctx, dup)
		require.ErrorIs(t, err, domain.ErrDuplicateSymbol)

		// state unchanged
		found, err := repo.GetEntryBySymbol(ctx, "SOL")
		require.NoError(t, err)
		assert.Equal(t, entry.FeedID, found.FeedID)
	}
}

func testDuplicateFeedID(repo domain.RegistryRepository) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()
		entry := newTestEntry("ADA")

		err := repo.AddEntry(ctx, entry)
		require.NoError(t, err)

		// same feed id, different symbol
		dup := newTestEntry("DOT")
		dup.FeedID = entry.FeedID
		err = repo.AddEntry(ctx, dup)
		require.ErrorIs(t, err, domain.ErrDuplicateFeedID)

		_, err = repo.GetEntryBySymbol(ctx, "DOT")
		require.ErrorIs(t, err, domain.ErrSymbolNotFound)
	}
}

func testAddEntriesAllOrNothing(
	repo domain.RegistryRepository,
) func(*testing.T) {
	return func(t *testing.T) {
		ctx := context.Background()
		existing := newTestEntry("AVAX")

		err := repo.AddEntry(ctx, existing)
		require.NoError(t, err)

		// the batch fails on the last entry, nothing must be persisted
		batch := []domain.RegistryEntry{
			newTestEntry("ATOM"), newTestEntry("NEAR"), newTestEntry("AVAX"),
		}
		err = repo.AddEntries(ctx, batch)
		require.ErrorIs(t, err, domain.ErrDuplicateSymbol)

		_, err = repo.GetEntryBySymbol(ctx, "ATOM")
		require.ErrorIs(t, err, domain.ErrSymbolNotFound)
		_, err = repo.GetEntryBySymbol(ctx, "NEAR")
		require.ErrorIs(t, err, domain.ErrSymbolNotFound)
	}
}

func newTestEntry(symbol string) domain.RegistryEntry {
	return domain.RegistryEntry{
		ID:     uuid.New().String(),
		Symbol: symbol,
		FeedID: newTestFeedID(),
	}
}

func newTestFeedID() string {
	return fmt.Sprintf("0x%040x", uuid.New().ID())
}
