package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ListeningPortKey is the port where the HTTP interface will listen on.
	ListeningPortKey = "LISTENING_PORT"
	// DatadirKey is the local data directory to store the internal state of
	// the daemon.
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the
	// values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported.
	DBTypeKey = "DB_TYPE"
	// VaultTypeKey is used to switch the yield vault backend between those
	// supported.
	VaultTypeKey = "VAULT_TYPE"
	// VaultAddrKey is the base url of the remote yield vault, required when
	// the vault type is http.
	VaultAddrKey = "VAULT_ADDR"
	// VaultAccountKey identifies the module towards the vault.
	VaultAccountKey = "VAULT_ACCOUNT"
	// OwnerKey is the identity holding the single-owner capability gating
	// the administrative surface.
	OwnerKey = "OWNER"
	// AssetsKey optionally pre-binds supported assets at startup, as a
	// comma-separated list of <asset>:<shareToken> pairs.
	AssetsKey = "ASSETS"

	// DBInMemory ...
	DBInMemory = "inmemory"
	// DBBadger ...
	DBBadger = "badger"

	// VaultSim ...
	VaultSim = "sim"
	// VaultHTTP ...
	VaultHTTP = "http"

	// DbLocation is the folder inside the datadir containing db files.
	DbLocation = "db"
)

var vip *viper.Viper

// InitConfig reads the environment and validates the resulting config.
func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("FEEVAULT")
	vip.AutomaticEnv()

	homeDir, _ := os.UserHomeDir()

	vip.SetDefault(ListeningPortKey, 9945)
	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, filepath.Join(homeDir, ".feevaultd"))
	vip.SetDefault(DBTypeKey, DBBadger)
	vip.SetDefault(VaultTypeKey, VaultSim)
	vip.SetDefault(VaultAccountKey, "feevaultd")
	vip.SetDefault(OwnerKey, "operator")

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

// GetString ...
func GetString(key string) string {
	return vip.GetString(key)
}

// GetInt ...
func GetInt(key string) int {
	return vip.GetInt(key)
}

// GetDatadir returns the data directory of the daemon.
func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetDbDir returns the db directory inside the datadir.
func GetDbDir() string {
	return filepath.Join(GetDatadir(), DbLocation)
}

// GetAssets parses the optional pre-bound assets into (asset, shareToken)
// pairs.
func GetAssets() ([][2]string, error) {
	raw := GetString(AssetsKey)
	if raw == "" {
		return nil, nil
	}

	pairs := make([][2]string, 0)
	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf(
				"invalid asset binding %q, expected <asset>:<shareToken>", entry,
			)
		}
		pairs = append(pairs, [2]string{parts[0], parts[1]})
	}
	return pairs, nil
}

func validate() error {
	switch dbType := GetString(DBTypeKey); dbType {
	case DBInMemory, DBBadger:
	default:
		return fmt.Errorf("unsupported db type %q", dbType)
	}

	switch vaultType := GetString(VaultTypeKey); vaultType {
	case VaultSim:
	case VaultHTTP:
		if GetString(VaultAddrKey) == "" {
			return fmt.Errorf("%s is required when the vault type is http", VaultAddrKey)
		}
	default:
		return fmt.Errorf("unsupported vault type %q", vaultType)
	}

	if GetString(OwnerKey) == "" {
		return fmt.Errorf("%s must not be empty", OwnerKey)
	}

	return nil
}

func initDatadir() error {
	return os.MkdirAll(GetDbDir(), os.ModeDir|0755)
}
