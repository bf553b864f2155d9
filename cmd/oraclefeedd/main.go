package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/oraclefeed-network/oraclefeed-daemon/internal/config"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/application"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/domain"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/core/ports"
	aggregatorfeeder "github.com/oraclefeed-network/oraclefeed-daemon/internal/infrastructure/feeder/aggregator"
	opaqueidfeeder "github.com/oraclefeed-network/oraclefeed-daemon/internal/infrastructure/feeder/opaqueid"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/infrastructure/provider/hermes"
	"github.com/oraclefeed-network/oraclefeed-daemon/internal/infrastructure/provider/roundgw"
	registrystore "github.com/oraclefeed-network/oraclefeed-daemon/internal/infrastructure/storage/registry/badger"
	httpinterface "github.com/oraclefeed-network/oraclefeed-daemon/internal/interfaces/http"
)

func main() {
	if err := config.InitConfig(); err != nil {
		log.WithError(err).Fatal("invalid config")
	}
	log.SetLevel(log.Level(config.GetInt(config.LogLevelKey)))

	dbDir := config.GetString(config.DatadirKey)
	if dbDir != "" {
		dbDir = filepath.Join(dbDir, config.DbLocation)
	}
	registryRepo, err := registrystore.NewRegistryRepository(dbDir, nil)
	if err != nil {
		log.WithError(err).Fatal("error while opening registry store")
	}
	defer registryRepo.Close()

	source, validateFeedID, err := buildPriceSource()
	if err != nil {
		log.WithError(err).Fatal("error while setting up price source")
	}

	adminToken := config.GetString(config.AdminTokenKey)
	admin := ports.AdminCheckerFunc(func(caller string) bool {
		return adminToken != "" && caller == adminToken
	})

	adapterSvc := application.NewAdapterService(
		registryRepo, source, admin, validateFeedID,
	)

	if err := bootstrapRegistry(adapterSvc, registryRepo); err != nil {
		log.WithError(err).Fatal("error while bootstrapping registry")
	}

	addr := fmt.Sprintf(":%d", config.GetInt(config.ListenPortKey))
	httpSvc, err := httpinterface.NewService(addr, adapterSvc)
	if err != nil {
		log.WithError(err).Fatal("error while setting up http interface")
	}

	go func() {
		if err := httpSvc.Start(); err != nil {
			log.WithError(err).Fatal("error while serving http interface")
		}
	}()

	log.WithField("source", source.Name()).Info("daemon started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)
	<-sigChan

	httpSvc.Stop()
	log.Info("exiting")
}

// buildPriceSource wires the configured provider shape. Provider identity
// never leaks past this composition point and the fetcher boundary.
func buildPriceSource() (ports.PriceSource, domain.FeedIDValidator, error) {
	endpoint := config.GetString(config.ProviderEndpointKey)

	switch kind := config.GetString(config.ProviderKindKey); kind {
	case config.ProviderKindAggregator:
		client, err := roundgw.NewClient(endpoint)
		if err != nil {
			return nil, nil, err
		}
		return aggregatorfeeder.NewService(client),
			domain.ValidateAggregatorFeedID, nil
	case config.ProviderKindOpaqueID:
		client, err := hermes.NewClient(endpoint)
		if err != nil {
			return nil, nil, err
		}
		return opaqueidfeeder.NewService(client),
			domain.ValidateOpaqueFeedID, nil
	default:
		return nil, nil, fmt.Errorf("unknown provider kind %s", kind)
	}
}

// bootstrapRegistry populates a fresh registry from the configured parallel
// lists. A non-empty registry means the deployment already happened, the
// lists are then left alone.
func bootstrapRegistry(
	adapterSvc *application.AdapterService, repo domain.RegistryRepository,
) error {
	symbols := config.GetStringSlice(config.BootstrapSymbolsKey)
	feedIDs := config.GetStringSlice(config.BootstrapFeedIDsKey)
	if len(symbols) == 0 && len(feedIDs) == 0 {
		return nil
	}

	ctx := context.Background()
	entries, err := repo.GetAllEntries(ctx)
	if err != nil {
		return err
	}
	if len(entries) > 0 {
		log.Debug("registry already populated, skipping bootstrap")
		return nil
	}

	if err := adapterSvc.BootstrapRegistry(ctx, symbols, feedIDs); err != nil {
		return err
	}

	log.Infof("registry bootstrapped with %d entries", len(symbols))
	return nil
}
