package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// ListenPortKey is the port where the HTTP interface will listen on
	ListenPortKey = "LISTEN_PORT"
	// DatadirKey is the local data directory to store the internal state of
	// the daemon. An empty value keeps the registry in memory.
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the
	// values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// ProviderKindKey selects the upstream feed provider shape, one of
	// "aggregator" or "opaqueid"
	ProviderKindKey = "PROVIDER_KIND"
	// ProviderEndpointKey is the base url of the upstream feed provider
	ProviderEndpointKey = "PROVIDER_ENDPOINT"
	// AdminTokenKey is the token identifying the registry administrator on
	// mutating calls
	AdminTokenKey = "ADMIN_TOKEN"
	// BootstrapSymbolsKey is the list of symbols to register at first
	// startup, parallel to BootstrapFeedIDsKey
	BootstrapSymbolsKey = "BOOTSTRAP_SYMBOLS"
	// BootstrapFeedIDsKey is the list of feed identifiers to register at
	// first startup, parallel to BootstrapSymbolsKey
	BootstrapFeedIDsKey = "BOOTSTRAP_FEED_IDS"

	// ProviderKindAggregator ...
	ProviderKindAggregator = "aggregator"
	// ProviderKindOpaqueID ...
	ProviderKindOpaqueID = "opaqueid"

	// DbLocation is the folder inside the datadir containing the registry db
	DbLocation = "db"
)

var vip *viper.Viper

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("ORACLEFEED")
	vip.AutomaticEnv()

	vip.SetDefault(ListenPortKey, 9960)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir())
	vip.SetDefault(ProviderKindKey, ProviderKindAggregator)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetStringSlice(key string) []string {
	return vip.GetStringSlice(key)
}

func validate() error {
	providerKind := vip.GetString(ProviderKindKey)
	if providerKind != ProviderKindAggregator &&
		providerKind != ProviderKindOpaqueID {
		return fmt.Errorf(
			"provider kind must be either %s or %s, got %s",
			ProviderKindAggregator, ProviderKindOpaqueID, providerKind,
		)
	}

	if vip.GetString(ProviderEndpointKey) == "" {
		return fmt.Errorf("provider endpoint must not be empty")
	}

	symbols := vip.GetStringSlice(BootstrapSymbolsKey)
	feedIDs := vip.GetStringSlice(BootstrapFeedIDsKey)
	if len(symbols) != len(feedIDs) {
		return fmt.Errorf(
			"bootstrap symbols and feed ids must have the same length, "+
				"got %d and %d", len(symbols), len(feedIDs),
		)
	}

	return nil
}

func initDatadir() error {
	datadir := vip.GetString(DatadirKey)
	if datadir == "" {
		return nil
	}
	return makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation))
}

func defaultDatadir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".oraclefeed-daemon")
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
