package registrystore

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/timshannon/badgerhold/v4"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
)

type registryRepository struct {
	store *badgerhold.Store
}

// NewRegistryRepository returns a badger-backed registry repository. An
// empty baseDbDir opens the store in memory, which is how tests run it.
func NewRegistryRepository(
	baseDbDir string, logger badger.Logger,
) (domain.RegistryRepository, error) {
	var registryDir string
	if len(baseDbDir) > 0 {
		registryDir = filepath.Join(baseDbDir, "registry")
	}

	store, err := createDb(registryDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening registry db: %w", err)
	}
	return &registryRepository{store}, nil
}

func (r *registryRepository) AddEntry(
	ctx context.Context, entry domain.RegistryEntry,
) error {
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		return r.insertEntry(tx, entry)
	})
}

func (r *registryRepository) AddEntries(
	ctx context.Context, entries []domain.RegistryEntry,
) error {
	// a single transaction makes bulk population all-or-nothing
	return r.store.Badger().Update(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if err := r.insertEntry(tx, entry); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *registryRepository) GetEntryBySymbol(
	ctx context.Context, symbol string,
) (*domain.RegistryEntry, error) {
	var entry domain.RegistryEntry
	if err := r.store.FindOne(
		&entry, badgerhold.Where("Symbol").Eq(symbol),
	); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrSymbolNotFound
		}
		return nil, err
	}

	return &entry, nil
}

func (r *registryRepository) GetEntryByFeedID(
	ctx context.Context, feedID string,
) (*domain.RegistryEntry, error) {
	var entry domain.RegistryEntry
	if err := r.store.FindOne(
		&entry, badgerhold.Where("FeedID").Eq(feedID),
	); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrFeedIDNotFound
		}
		return nil, err
	}

	return &entry, nil
}

func (r *registryRepository) GetAllEntries(
	ctx context.Context,
) ([]domain.RegistryEntry, error) {
	var entries []domain.RegistryEntry
	if err := r.store.Find(&entries, nil); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *registryRepository) Close() {
	r.store.Close()
}

// insertEntry enforces the bijection inside the caller's transaction: both
// lookups and the insert see and produce the same atomic state.
func (r *registryRepository) insertEntry(
	tx *badger.Txn, entry domain.RegistryEntry,
) error {
	var existing domain.RegistryEntry

	err := r.store.TxFindOne(
		tx, &existing, badgerhold.Where("Symbol").Eq(entry.Symbol),
	)
	if err == nil {
		return domain.ErrDuplicateSymbol
	}
	if err != badgerhold.ErrNotFound {
		return err
	}

	err = r.store.TxFindOne(
		tx, &existing, badgerhold.Where("FeedID").Eq(entry.FeedID),
	)
	if err == nil {
		return domain.ErrDuplicateFeedID
	}
	if err != badgerhold.ErrNotFound {
		return err
	}

	return r.store.TxInsert(tx, entry.ID, &entry)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(30 * time.Minute)

		go func() {
			for {
				<-ticker.C
				if err := db.Badger().RunValueLogGC(0.5); err != nil &&
					err != badger.ErrNoRewrite {
					log.Error(err)
				}
			}
		}()
	}

	return db, nil
}
